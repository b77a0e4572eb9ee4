package collatz_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/collatz/internal/collatz"
)

var _ = Describe("Engine", func() {
	var engine *collatz.Engine

	Context("with seeds 6 and 27", func() {
		BeforeEach(func() {
			var err error
			engine, err = collatz.New(collatz.Ints{6, 27}, collatz.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())
		})

		It("reports stopping times in input order", func() {
			Expect(engine.StoppingTimes()).To(Equal([]int{9, 112}))
		})

		It("reports maxima in input order", func() {
			Expect(engine.MaxValues()).To(Equal([]int64{16, 9232}))
		})

		It("starts the sequence at the seeds and keeps the requested length", func() {
			m, err := engine.Sequence(collatz.DefaultIterations)
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(HaveLen(collatz.DefaultIterations))
			Expect(m[0]).To(Equal([]int64{6, 27}))
		})

		It("does not change between calls", func() {
			first, _ := engine.Analyze()
			second, _ := engine.Analyze()
			Expect(second).To(Equal(first))
		})
	})

	DescribeTable("single seeds",
		func(seed int64, stop int, peak int64) {
			e, err := collatz.New(collatz.Int(seed), collatz.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())

			stats, err := e.Analyze()
			Expect(err).NotTo(HaveOccurred())
			Expect(stats).To(ConsistOf(collatz.Stats{Seed: seed, StoppingTime: stop, Max: peak}))
		},
		Entry("1", int64(1), 1, int64(4)),
		Entry("2", int64(2), 2, int64(4)),
		Entry("6", int64(6), 9, int64(16)),
		Entry("27", int64(27), 112, int64(9232)),
		Entry("97", int64(97), 119, int64(9232)),
		Entry("871", int64(871), 179, int64(190996)),
	)

	It("cycles through 4, 2, 1 after converging", func() {
		e, _ := collatz.New(collatz.Int(1), collatz.DefaultConfig())
		m, err := e.Sequence(7)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Column(0)).To(Equal([]int64{1, 4, 2, 1, 4, 2, 1}))
	})

	It("rejects non-positive seeds", func() {
		_, err := collatz.New(collatz.Ints{4, 0}, collatz.DefaultConfig())
		Expect(err).To(MatchError(collatz.ErrInvalidSeed))
	})
})
