// Package camel implements Camel Cards, a poker-like game played with bare
// card ranks and a wildcard.
//
// # Core Types
//
// Rank: one of thirteen card strengths. The symbol J is the Joker, the
// weakest rank, which counts as any other rank when a hand is classified.
//
// Hand: five ranks plus the Tier they form, computed once at construction.
//
// Entry: a Hand together with the wager placed on it.
//
// # Ranking
//
// Entries are ordered by Tier and then card by card. The weakest entry takes
// position 1 and every entry pays its wager times its position.
package camel
