package games_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/maxxl28/modeling-soccer-transfers/internal/dynamics"
	"github.com/maxxl28/modeling-soccer-transfers/internal/games"
)

var _ = Describe("replicator dynamics", func() {
	var stepper *dynamics.Stepper

	BeforeEach(func() {
		stepper = dynamics.NewStepper()
	})

	Describe("club game", func() {
		It("keeps both marginals inside [0,1] for the whole run", func() {
			traj, err := stepper.Run(context.Background(), games.NewClubGame(), dynamics.State{0.1, 0.9}, 40)
			Expect(err).NotTo(HaveOccurred())

			for _, x := range traj.States {
				Expect(x[0]).To(BeNumerically(">=", 0))
				Expect(x[0]).To(BeNumerically("<=", 1))
				Expect(x[1]).To(BeNumerically(">=", 0))
				Expect(x[1]).To(BeNumerically("<=", 1))
			}
		})

		It("drives the youth share up when the other side hoards stars", func() {
			// Below the mixed equilibrium youth development is the better
			// reply, so a star-heavy market drifts back toward youth.
			traj, err := stepper.Run(context.Background(), games.NewClubGame(), dynamics.State{0.2, 0.2}, 10)
			Expect(err).NotTo(HaveOccurred())

			x := traj.Column(0)
			Expect(x[len(x)-1]).To(BeNumerically(">", x[0]))
		})
	})

	Describe("player game", func() {
		It("lets money motivation take over when its payoff growth dominates", func() {
			g := games.NewPlayerGame() // mGrow 5.0 vs pGrow 1.0
			traj, err := stepper.Run(context.Background(), g, dynamics.State{0.6}, 50)
			Expect(err).NotTo(HaveOccurred())

			prestige := traj.Column(0)
			Expect(prestige[len(prestige)-1]).To(BeNumerically("<", 0.05))
		})

		It("lets prestige take over under prestige-heavy coefficients", func() {
			g := &games.PlayerGame{A0: 3.0, D0: 1.5, B: 1.0, PGrow: 6.0, MGrow: 0.5}
			traj, err := stepper.Run(context.Background(), g, dynamics.State{0.4}, 50)
			Expect(err).NotTo(HaveOccurred())

			prestige := traj.Column(0)
			Expect(prestige[len(prestige)-1]).To(BeNumerically(">", 0.95))
		})

		It("reports payoff series at every sample", func() {
			g := games.NewPlayerGame()
			traj, err := stepper.Run(context.Background(), g, dynamics.State{0.6}, 10)
			Expect(err).NotTo(HaveOccurred())

			for _, name := range g.AuxNames() {
				Expect(traj.Series(name)).To(HaveLen(traj.Len()))
			}
		})
	})
})
