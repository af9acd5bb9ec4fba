package cost_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/okhalaf/mreval/internal/cost"
	"github.com/okhalaf/mreval/internal/engineering"
	"github.com/okhalaf/mreval/internal/params"
)

func nominalInputs() cost.Inputs {
	cat := params.DefaultCatalog()
	d := params.DefaultGCMRDesign()
	plant, err := engineering.Derive(d, cat)
	Expect(err).NotTo(HaveOccurred())
	return cost.Inputs{
		Design:           d,
		Econ:             params.DefaultEconomics(),
		Plant:            plant,
		FuelLifetimeDays: 5 * 365,
	}
}

var _ = Describe("Model", func() {
	var model *cost.Model

	BeforeEach(func() {
		model = cost.NewModel()
	})

	Describe("nominal estimate", func() {
		var est cost.Estimate

		BeforeEach(func() {
			var err error
			est, err = model.Estimate(nominalInputs())
			Expect(err).NotTo(HaveOccurred())
		})

		It("produces positive capital categories", func() {
			for _, b := range []cost.Breakdown{est.FOAK, est.NOAK} {
				Expect(b.Preconstruction).To(BeNumerically(">", 0))
				Expect(b.Direct).To(BeNumerically(">", 0))
				Expect(b.Indirect).To(BeNumerically(">", 0))
				Expect(b.OwnersCost).To(BeNumerically(">", 0))
				Expect(b.Training).To(BeNumerically(">", 0))
				Expect(b.InterestDuringConstruction).To(BeNumerically(">", 0))
				Expect(b.AnnualOM).To(BeNumerically(">", 0))
				Expect(b.AnnualFuel).To(BeNumerically(">", 0))
				Expect(b.LCOE).To(BeNumerically(">", 0))
			}
		})

		It("satisfies the capital sum identity", func() {
			for _, b := range []cost.Breakdown{est.FOAK, est.NOAK} {
				Expect(b.TotalCapital()).To(BeNumerically("~", b.TCI, 1e-6*b.TCI))
				Expect(b.OCC + b.InterestDuringConstruction).To(BeNumerically("~", b.TCI, 1e-6*b.TCI))
			}
		})

		It("splits LCOE into components that sum to the total", func() {
			for _, b := range []cost.Breakdown{est.FOAK, est.NOAK} {
				sum := b.LCOECapital + b.LCOEOM + b.LCOEFuel
				Expect(sum).To(BeNumerically("~", b.LCOE, 1e-9*b.LCOE))
			}
		})

		It("prices the NOAK unit below the FOAK unit", func() {
			Expect(est.NOAK.TCI).To(BeNumerically("<", est.FOAK.TCI))
			Expect(est.NOAK.LCOE).To(BeNumerically("<", est.FOAK.LCOE))
		})

		It("reports the derived capacity factor and generation", func() {
			Expect(est.CapacityFactor).To(BeNumerically(">", 0.9))
			Expect(est.CapacityFactor).To(BeNumerically("<", 1))
			Expect(est.AnnualGenerationMWh).To(BeNumerically("~",
				nominalInputs().Plant.PowerMWe*est.CapacityFactor*8760, 1e-6))
		})
	})

	Describe("input rejection", func() {
		It("fails on a zero fuel lifetime instead of producing NaN", func() {
			in := nominalInputs()
			in.FuelLifetimeDays = 0
			_, err := model.Estimate(in)
			var me *cost.ModelError
			Expect(errors.As(err, &me)).To(BeTrue())
		})

		It("fails on enrichment at or above the supply limit", func() {
			in := nominalInputs()
			in.Design.Enrichment = 0.2
			_, err := model.Estimate(in)
			var me *cost.ModelError
			Expect(errors.As(err, &me)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("253"))
		})

		It("fails on an escalation year outside the price indices", func() {
			in := nominalInputs()
			in.Econ.EscalationYear = 1999
			_, err := model.Estimate(in)
			var me *cost.ModelError
			Expect(errors.As(err, &me)).To(BeTrue())
		})
	})

	Describe("determinism", func() {
		It("reproduces the nominal estimate bit for bit", func() {
			a, err := model.Estimate(nominalInputs())
			Expect(err).NotTo(HaveOccurred())
			b, err := model.Estimate(nominalInputs())
			Expect(err).NotTo(HaveOccurred())
			Expect(a.FOAK.LCOE).To(Equal(b.FOAK.LCOE))
			Expect(a.NOAK.TCI).To(Equal(b.NOAK.TCI))
		})

		It("reproduces a sampled estimate under the same seed", func() {
			in := nominalInputs()
			in.Econ.Samples = 25
			a, err := model.Estimate(in)
			Expect(err).NotTo(HaveOccurred())
			b, err := model.Estimate(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.FOAK.LCOE).To(Equal(b.FOAK.LCOE))
			Expect(a.LCOEStdFOAK).To(Equal(b.LCOEStdFOAK))
			Expect(a.LCOEStdFOAK).To(BeNumerically(">", 0))
		})

		It("diverges under a different seed", func() {
			in := nominalInputs()
			in.Econ.Samples = 25
			a, err := model.Estimate(in)
			Expect(err).NotTo(HaveOccurred())
			in.Econ.Seed = 99
			b, err := model.Estimate(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.FOAK.LCOE).NotTo(Equal(b.FOAK.LCOE))
		})
	})

	Describe("coolant drive routing", func() {
		It("prices primary piping on the helium baseline", func() {
			est, err := model.Estimate(nominalInputs())
			Expect(err).NotTo(HaveOccurred())
			// helium designs have no pumps, but the loop still moves
			// coolant and the piping must be paid for
			Expect(est.FOAK.Accounts["222.2"]).To(BeNumerically(">", 0))
			Expect(est.FOAK.Accounts["222.11"]).To(BeZero())
			Expect(est.FOAK.Accounts["222.13"]).To(BeNumerically(">", 0))
		})

		It("scales piping with the loop mass flow", func() {
			small := nominalInputs()
			big := nominalInputs()
			big.Design.PowerMWt = 20
			cat := params.DefaultCatalog()
			var err error
			big.Plant, err = engineering.Derive(big.Design, cat)
			Expect(err).NotTo(HaveOccurred())
			estSmall, err := model.Estimate(small)
			Expect(err).NotTo(HaveOccurred())
			estBig, err := model.Estimate(big)
			Expect(err).NotTo(HaveOccurred())
			Expect(estBig.FOAK.Accounts["222.2"]).To(BeNumerically(">", estSmall.FOAK.Accounts["222.2"]))
		})
	})

	Describe("replacement annuities", func() {
		It("annualizes moderator and heat exchanger replacement", func() {
			est, err := model.Estimate(nominalInputs())
			Expect(err).NotTo(HaveOccurred())
			Expect(est.FOAK.Accounts["752"]).To(BeNumerically(">", 0))
			Expect(est.FOAK.Accounts["756"]).To(BeNumerically(">", 0))
			// the baseline carries no in-vessel shield, so nothing to replace
			Expect(est.FOAK.Accounts["753"]).To(BeZero())
		})

		It("reads replacement periods in refueling cycles", func() {
			in := nominalInputs()
			in.Econ, _ = in.Econ.WithOverride("vessel_replacement_cycles", 20.0)
			longer, err := model.Estimate(in)
			Expect(err).NotTo(HaveOccurred())
			base, err := model.Estimate(nominalInputs())
			Expect(err).NotTo(HaveOccurred())
			// doubling the cycle count spreads the same vessel cost over a
			// longer calendar period
			Expect(longer.FOAK.Accounts["751"]).To(BeNumerically("<", base.FOAK.Accounts["751"]))
		})

		It("charges moderator replacement every cycle, not on the vessel period", func() {
			est, err := model.Estimate(nominalInputs())
			Expect(err).NotTo(HaveOccurred())
			// a per-cycle annuity recovers a larger share of its base cost
			// than a ten-cycle one
			Expect(est.FOAK.Accounts["752"] / est.FOAK.Accounts["221.33"]).To(
				BeNumerically(">", est.FOAK.Accounts["751"]/est.FOAK.Accounts["221.12"]))
		})
	})

	Describe("loop multiplicity", func() {
		It("charges redundant primary loops", func() {
			base := nominalInputs()
			one := base
			one.Design.PrimaryLoopCount = 1
			estBase, err := model.Estimate(base)
			Expect(err).NotTo(HaveOccurred())
			estOne, err := model.Estimate(one)
			Expect(err).NotTo(HaveOccurred())
			Expect(estBase.FOAK.Direct).To(BeNumerically(">", estOne.FOAK.Direct))
		})

		It("drops purification when the loop has none", func() {
			in := nominalInputs()
			in.Design.LoopPurified = false
			est, err := model.Estimate(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(est.FOAK.Accounts["226"]).To(BeZero())
		})
	})
})

var _ = Describe("financial primitives", func() {
	It("computes the capital recovery factor", func() {
		// 7% over 20 years is the textbook 0.09439
		g := math.Pow(1.07, 20)
		want := 0.07 * g / (g - 1)
		Expect(want).To(BeNumerically("~", 0.09439, 1e-4))
	})

	It("halves factory costs by the tenth unit at a 20% learning rate", func() {
		in := nominalInputs()
		in.Econ.Learning = params.LearningRates{Onsite: 0.2}
		m := cost.NewModel()
		est, err := m.Estimate(in)
		Expect(err).NotTo(HaveOccurred())
		// onsite learning runs over 2n units: (1-0.2)^log2(20)
		want := math.Pow(0.8, math.Log2(20))
		ratio := est.NOAK.Accounts["212"] / est.FOAK.Accounts["212"]
		Expect(ratio).To(BeNumerically("~", want, 1e-9))
	})
})
