package lifecycle_test

import (
	"io"
	"log/slog"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/emviz/internal/catalog"
	"github.com/san-kum/emviz/internal/config"
	"github.com/san-kum/emviz/internal/lifecycle"
	"github.com/san-kum/emviz/internal/scene"
)

var _ = Describe("Manager", func() {
	var (
		root *scene.Root
		dev  *scene.Tracker
		mgr  *lifecycle.Manager
		p    config.Params
	)

	BeforeEach(func() {
		root = scene.NewRoot()
		dev = scene.NewTracker()
		mgr = lifecycle.New(root, dev,
			lifecycle.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
			lifecycle.WithRand(rand.New(rand.NewSource(7))),
		)
		p = config.DefaultParams()
	})

	It("starts empty", func() {
		Expect(mgr.State()).To(Equal(lifecycle.Empty))
		Expect(mgr.Active()).To(BeNil())
		Expect(root.Len()).To(BeZero())
	})

	Context("loading every concept", func() {
		for _, id := range catalog.IDs() {
			id := id
			It("attaches exactly one tagged subgraph for "+id, func() {
				Expect(mgr.Load(id, p)).To(Succeed())
				Expect(mgr.State()).To(Equal(lifecycle.Active))
				Expect(mgr.ActiveID()).To(Equal(id))
				Expect(root.Len()).To(Equal(1))
				Expect(root.Find(lifecycle.Tag)).To(BeIdenticalTo(mgr.Active()))
				Expect(mgr.Active().Len()).To(BeNumerically(">", 0))
				Expect(dev.Live()).To(Equal(mgr.Active().Handles()))

				Expect(mgr.Clear()).To(Succeed())
				Expect(root.Len()).To(BeZero())
				Expect(dev.Live()).To(BeZero())
			})
		}
	})

	It("replaces the previous visualization on load", func() {
		Expect(mgr.Load("electric-field-point", p)).To(Succeed())
		Expect(mgr.Load("magnetic-solenoid", p)).To(Succeed())
		Expect(mgr.Load("electric-field-dipole", p)).To(Succeed())

		Expect(root.Len()).To(Equal(1))
		Expect(mgr.ActiveID()).To(Equal("electric-field-dipole"))
		Expect(dev.Live()).To(Equal(mgr.Active().Handles()))
	})

	It("snapshots parameters at load time", func() {
		Expect(mgr.Load("electric-field-point", p)).To(Succeed())
		before := mgr.Active().Len()
		p.ShowEquipotential = true
		Expect(mgr.Active().Len()).To(Equal(before))

		Expect(mgr.Reload(p)).To(Succeed())
		Expect(mgr.Active().Len()).To(BeNumerically(">", before))
	})

	It("installs an empty subgraph for unknown ids", func() {
		Expect(mgr.Load("no-such-concept", p)).To(Succeed())
		Expect(mgr.State()).To(Equal(lifecycle.Active))
		Expect(mgr.Active().Len()).To(BeZero())
		Expect(root.Len()).To(Equal(1))
		Expect(dev.Live()).To(BeZero())
	})

	It("treats a second clear as a no-op", func() {
		Expect(mgr.Load("gauss-law", p)).To(Succeed())
		Expect(mgr.Clear()).To(Succeed())
		Expect(mgr.Clear()).To(Succeed())
		Expect(mgr.State()).To(Equal(lifecycle.Empty))
		Expect(dev.Live()).To(BeZero())
	})

	It("ignores reload when empty", func() {
		Expect(mgr.Reload(p)).To(Succeed())
		Expect(root.Len()).To(BeZero())
	})

	It("leaves the manager empty after a category switch", func() {
		Expect(mgr.Load("magnetic-loop", p)).To(Succeed())
		Expect(mgr.SwitchCategory(catalog.Electrostatics)).To(Succeed())
		Expect(mgr.State()).To(Equal(lifecycle.Empty))
		Expect(mgr.Category()).To(Equal(catalog.Electrostatics))
		Expect(root.Len()).To(BeZero())
		Expect(dev.Live()).To(BeZero())
	})

	Describe("best-effort disposal", func() {
		It("releases the remaining handles and detaches when one fails", func() {
			Expect(mgr.Load("electric-field-point", p)).To(Succeed())
			first := mgr.Active().Primitives[0]
			Expect(first.Geometry.Dispose()).To(Succeed())

			err := mgr.Clear()
			Expect(err).To(MatchError(scene.ErrAlreadyDisposed))
			Expect(mgr.State()).To(Equal(lifecycle.Empty))
			Expect(root.Len()).To(BeZero())
			Expect(dev.Live()).To(BeZero())
		})

		It("still installs the next visualization", func() {
			Expect(mgr.Load("electric-field-point", p)).To(Succeed())
			Expect(mgr.Active().Primitives[0].Material.Dispose()).To(Succeed())

			Expect(mgr.Load("magnetic-straight", p)).To(MatchError(scene.ErrAlreadyDisposed))
			Expect(mgr.ActiveID()).To(Equal("magnetic-straight"))
			Expect(root.Len()).To(Equal(1))
		})
	})
})
