package catalog

// descriptors is indexed by ConceptID. Equations are MathJax inline markup.
var descriptors = [NumConcepts]Descriptor{
	CoordinatesCartesian: {
		Concept:     CoordinatesCartesian,
		Category:    Electrostatics,
		ID:          "coordinates-cartesian",
		Label:       "Cartesian Coordinates",
		Description: "Basic 3D coordinate system with x, y, z axes.",
		Equation:    `\( \mathbf{r} = x\mathbf{\hat{i}} + y\mathbf{\hat{j}} + z\mathbf{\hat{k}} \)`,
	},
	CoordinatesCylindrical: {
		Concept:     CoordinatesCylindrical,
		Category:    Electrostatics,
		ID:          "coordinates-cylindrical",
		Label:       "Cylindrical Coordinates",
		Description: "Cylindrical coordinate system (ρ, φ, z).",
		Equation:    `\( \mathbf{r} = \rho\mathbf{\hat{\rho}} + z\mathbf{\hat{z}} \)`,
	},
	CoordinatesSpherical: {
		Concept:     CoordinatesSpherical,
		Category:    Electrostatics,
		ID:          "coordinates-spherical",
		Label:       "Spherical Coordinates",
		Description: "Spherical coordinate system (r, θ, φ).",
		Equation:    `\( \mathbf{r} = r\mathbf{\hat{r}} \)`,
	},
	Gradient: {
		Concept:     Gradient,
		Category:    Electrostatics,
		ID:          "vector-calculus-gradient",
		Label:       "Gradient (Scalar to Vector)",
		Description: "Visualizes the gradient of a scalar field, showing the direction of the greatest rate of increase.",
		Equation:    `\( \nabla f = \frac{\partial f}{\partial x}\mathbf{\hat{i}} + \frac{\partial f}{\partial y}\mathbf{\hat{j}} + \frac{\partial f}{\partial z}\mathbf{\hat{k}} \)`,
	},
	Divergence: {
		Concept:     Divergence,
		Category:    Electrostatics,
		ID:          "vector-calculus-divergence",
		Label:       "Divergence (Vector Field Flow)",
		Description: "Visualizes the divergence of a vector field, indicating the outward flux from a point.",
		Equation:    `\( \nabla \cdot \mathbf{F} = \frac{\partial F_x}{\partial x} + \frac{\partial F_y}{\partial y} + \frac{\partial F_z}{\partial z} \)`,
	},
	Curl: {
		Concept:     Curl,
		Category:    Electrostatics,
		ID:          "vector-calculus-curl",
		Label:       "Curl (Vector Field Rotation)",
		Description: "Visualizes the curl of a vector field, indicating the rotation or circulation at a point.",
		Equation:    `\( \nabla \times \mathbf{F} = \left( \frac{\partial F_z}{\partial y} - \frac{\partial F_y}{\partial z} \right)\mathbf{\hat{i}} + \left( \frac{\partial F_x}{\partial z} - \frac{\partial F_z}{\partial x} \right)\mathbf{\hat{j}} + \left( \frac{\partial F_y}{\partial x} - \frac{\partial F_x}{\partial y} \right)\mathbf{\hat{k}} \)`,
	},
	PointCharge: {
		Concept:     PointCharge,
		Category:    Electrostatics,
		ID:          "electric-field-point",
		Label:       "Point Charge Electric Field (E)",
		Description: "Electric field intensity (E) around a point charge. Field lines originate from positive charges and terminate on negative charges.",
		Equation:    `\( \mathbf{E} = \frac{1}{4\pi\epsilon_0} \frac{Q}{r^2} \mathbf{\hat{r}} \)`,
	},
	Dipole: {
		Concept:     Dipole,
		Category:    Electrostatics,
		ID:          "electric-field-dipole",
		Label:       "Electric Dipole Field",
		Description: "Electric field of two opposite charges (a dipole).",
		Equation:    `\( \mathbf{E}_{dipole} = \frac{1}{4\pi\epsilon_0} \frac{p}{r^3} [2\cos\theta\mathbf{\hat{r}} + \sin\theta\mathbf{\hat{\theta}}] \)`,
	},
	LineCharge: {
		Concept:     LineCharge,
		Category:    Electrostatics,
		ID:          "electric-field-line",
		Label:       "Line Charge Electric Field (E)",
		Description: "Electric field intensity (E) around an infinite line charge.",
		Equation:    `\( \mathbf{E} = \frac{\lambda}{2\pi\epsilon_0 \rho} \mathbf{\hat{\rho}} \)`,
	},
	PlaneCharge: {
		Concept:     PlaneCharge,
		Category:    Electrostatics,
		ID:          "electric-field-plane",
		Label:       "Plane Charge Electric Field (E)",
		Description: "Electric field intensity (E) from an infinite plane charge.",
		Equation:    `\( \mathbf{E} = \frac{\sigma}{2\epsilon_0} \mathbf{\hat{n}} \)`,
	},
	DisplacementFlux: {
		Concept:     DisplacementFlux,
		Category:    Electrostatics,
		ID:          "displacement-flux-density",
		Label:       "Electric Displacement Flux Density (D)",
		Description: "Visualizes the Electric Displacement Flux Density (D) for a point charge, showing how D lines are independent of the medium.",
		Equation:    `\( \mathbf{D} = \epsilon_0 \epsilon_r \mathbf{E} = \epsilon \mathbf{E} \)`,
	},
	GaussLaw: {
		Concept:     GaussLaw,
		Category:    Electrostatics,
		ID:          "gauss-law",
		Label:       "Gauss's Law",
		Description: "Illustrates Gauss's Law for electrostatics, relating electric flux through a closed surface to the enclosed charge.",
		Equation:    `\( \oint_S \mathbf{D} \cdot d\mathbf{S} = Q_{enc} \)`,
	},
	LorentzForce: {
		Concept:     LorentzForce,
		Category:    Magnetostatics,
		ID:          "lorentz-force",
		Label:       "Lorentz Force",
		Description: "Visualizes the Lorentz force on a moving charge in combined electric and magnetic fields.",
		Equation:    `\( \mathbf{F} = q(\mathbf{E} + \mathbf{v} \times \mathbf{B}) \)`,
	},
	StraightConductor: {
		Concept:     StraightConductor,
		Category:    Magnetostatics,
		ID:          "magnetic-straight",
		Label:       "Magnetic Field Intensity (H) - Straight Conductor",
		Description: "Magnetic field intensity (H) around a straight conductor carrying current. Uses Ampère's Law principles.",
		Equation:    `\( \mathbf{H} = \frac{I}{2\pi r} \mathbf{\hat{\phi}} \)`,
	},
	CurrentLoop: {
		Concept:     CurrentLoop,
		Category:    Magnetostatics,
		ID:          "magnetic-loop",
		Label:       "Magnetic Field Intensity (H) - Current Loop",
		Description: "Magnetic field intensity (H) through a current loop. Uses Biot-Savart's Law principles.",
		Equation:    `\( \mathbf{H}_{center} = \frac{I}{2R} \mathbf{\hat{z}} \)`,
	},
	Solenoid: {
		Concept:     Solenoid,
		Category:    Magnetostatics,
		ID:          "magnetic-solenoid",
		Label:       "Magnetic Field Intensity (H) - Solenoid",
		Description: "Magnetic field intensity (H) inside a solenoid.",
		Equation:    `\( \mathbf{H} = nI \mathbf{\hat{z}} \)`,
	},
	CurrentSheet: {
		Concept:     CurrentSheet,
		Category:    Magnetostatics,
		ID:          "magnetic-plane-sheet",
		Label:       "Magnetic Field Intensity (H) - Infinite Sheet",
		Description: "Magnetic field intensity (H) due to an infinite sheet of current.",
		Equation:    `\( \mathbf{H} = \frac{1}{2} \mathbf{K} \times \mathbf{\hat{n}} \)`,
	},
	MagneticFluxDensity: {
		Concept:     MagneticFluxDensity,
		Category:    Magnetostatics,
		ID:          "magnetic-flux-density",
		Label:       "Magnetic Flux Density (B)",
		Description: "Visualizes Magnetic Flux Density (B) for a straight conductor, showing its relation to H.",
		Equation:    `\( \mathbf{B} = \mu_0 \mu_r \mathbf{H} = \mu \mathbf{H} \)`,
	},
	BiotSavart: {
		Concept:     BiotSavart,
		Category:    Magnetostatics,
		ID:          "biot-savart-law",
		Label:       "Biot-Savart's Law",
		Description: "Conceptual visualization of Biot-Savart's Law, showing how current elements contribute to magnetic fields.",
		Equation:    `\( d\mathbf{H} = \frac{I d\mathbf{L} \times \mathbf{\hat{R}}}{4\pi R^2} \)`,
	},
	AmpereCircuit: {
		Concept:     AmpereCircuit,
		Category:    Magnetostatics,
		ID:          "ampere-circuit-law",
		Label:       "Ampère's Circuit Law",
		Description: "Illustrates Ampère's Circuit Law, relating the circulation of magnetic field intensity around a closed path to the enclosed current.",
		Equation:    `\( \oint_L \mathbf{H} \cdot d\mathbf{L} = I_{enc} \)`,
	},
	MaxwellMagnetostatics: {
		Concept:     MaxwellMagnetostatics,
		Category:    Magnetostatics,
		ID:          "maxwell-magnetostatics",
		Label:       "Maxwell's Equations for Magnetostatics",
		Description: "Conceptual visualization of Maxwell's Equations specific to magnetostatics (Ampère's Law and Gauss's Law for Magnetism).",
		Equation:    `\( \nabla \times \mathbf{H} = \mathbf{J} \quad \text{and} \quad \nabla \cdot \mathbf{B} = 0 \)`,
	},
}
