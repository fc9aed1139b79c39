// Package games holds the replicator-dynamics models of the Saudi transfer
// market, each implementing [dynamics.System]:
//
//   - [ClubGame]: two populations of clubs (Saudi, European) choosing between
//     youth development and superstar signings under a fixed bimatrix payoff
//     table; strategy shares are clamped to [0,1] every step.
//   - [PlayerGame]: one population of players split between prestige-motivated
//     and money-motivated moves, with payoffs that grow with the share of the
//     matching population; deliberately unclamped.
package games
