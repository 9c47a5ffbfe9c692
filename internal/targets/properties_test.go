package targets_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/targets/internal/targets"
)

func gridPoints(s targets.Surface, stride int) [][]float64 {
	var pts [][]float64
	for i := 0; i < len(s.Y); i += stride {
		for j := 0; j < len(s.X); j += stride {
			pts = append(pts, []float64{s.X[j], s.Y[i]})
		}
	}
	return pts
}

var _ = Describe("Target properties", func() {
	registry := targets.NewRegistry()

	Describe("ExpValue", func() {
		for _, name := range registry.ListTargets() {
			name := name
			It("is exp(Value) on the grid of "+name, func() {
				t, err := registry.GetTarget(name)
				Expect(err).NotTo(HaveOccurred())

				s := t.Surface()
				for _, p := range gridPoints(s, 13) {
					ev := t.ExpValue(p)
					Expect(ev).To(BeNumerically(">=", 0))
					Expect(ev).To(BeNumerically("~", math.Exp(t.Value(p)), 1e-12))
				}
			})
		}
	})

	DescribeTable("analytic and numeric gradients agree",
		func(name string, pts [][]float64) {
			t, err := registry.GetTarget(name)
			Expect(err).NotTo(HaveOccurred())

			analytic := t.Grad
			if r, ok := t.(*targets.Rosenbrock); ok {
				analytic = r.AnalyticGrad
			}
			for _, p := range pts {
				num := targets.NumericGrad(t, p)
				got := analytic(p)
				Expect(got).To(HaveLen(2))
				for i := range got {
					Expect(got[i]).To(BeNumerically("~", num[i], 1e-3), "point %v coord %d", p, i)
				}
			}
		},
		Entry("multnorm", "multnorm", [][]float64{{0, 0}, {1, 0.5}, {-2, 2}, {2.9, -0.3}}),
		Entry("donut", "donut", [][]float64{{1, 1}, {3, 0}, {-0.5, -2.5}, {0.2, 0.1}}),
		Entry("rosenbrock", "rosenbrock", [][]float64{{1, 2}, {-1.2, 1}, {0.4, 0.4}, {1.8, -1.8}}),
	)

	Describe("BimodMultNorm", func() {
		It("is unchanged when the modes are relabelled", func() {
			m1 := targets.Mode{A: 0.3, Mean: []float64{2, 3}, Cov: [][]float64{{1, 0.1}, {0.1, 1}}}
			m2 := targets.Mode{A: -0.2, Mean: []float64{-2, -2}, Cov: [][]float64{{1.5, 0}, {0, 1.5}}}

			a, err := targets.NewBimodMultNorm(6, m1, m2, "")
			Expect(err).NotTo(HaveOccurred())
			b, err := targets.NewBimodMultNorm(6, m2, m1, "")
			Expect(err).NotTo(HaveOccurred())

			sa, sb := a.Surface(), b.Surface()
			for i := range sa.Z {
				for j := range sa.Z[i] {
					Expect(sa.Z[i][j]).To(BeNumerically("~", sb.Z[i][j], 1e-12))
				}
			}
		})
	})

	DescribeTable("surface shape",
		func(size float64) {
			t, err := targets.NewDonut(size, 2, 0.4, "")
			Expect(err).NotTo(HaveOccurred())

			s := t.Surface()
			Expect(s.X).To(HaveLen(targets.GridSize))
			Expect(s.Y).To(HaveLen(targets.GridSize))
			Expect(s.Z).To(HaveLen(targets.GridSize))
			for _, row := range s.Z {
				Expect(row).To(HaveLen(targets.GridSize))
			}
		},
		Entry("small", 0.5),
		Entry("default", 4.0),
		Entry("large", 50.0),
	)

	Describe("reference values", func() {
		It("gives the standard normal log-density at the origin", func() {
			t, err := targets.NewMultNorm(3, []float64{0, 0}, [][]float64{{1, 0}, {0, 1}}, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(t.Value([]float64{0, 0})).To(BeNumerically("~", -math.Log(2*math.Pi), 1e-12))
		})

		It("gives -1 for Rosenbrock(0, 20) at (1, 1)", func() {
			t, err := targets.NewRosenbrock(2, 0, 20, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(t.Value([]float64{1, 1})).To(Equal(-1.0))
		})

		It("peaks on the donut ridge", func() {
			t, err := targets.NewDonut(4, 2, 0.4, "")
			Expect(err).NotTo(HaveOccurred())

			peak := t.Value([]float64{2, 0})
			Expect(peak).To(BeNumerically("~", -0.5*math.Log(2*math.Pi)-math.Log(0.4), 1e-12))
			_, hi := t.ValueGrid().Range()
			Expect(hi).To(BeNumerically("<=", peak))
		})
	})
})
