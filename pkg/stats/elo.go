// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package stats estimates the strength difference between the engine and
// its opponent from tournament results.
package stats

import "math"

// Elo returns the likely elo difference of the engine along with its
// p < 0.05 lower and upper bounds, from the number of wins, draws, and
// losses it scored. A score of 0% or 100% has no finite elo and is
// reported as 0.
func Elo(ws, ds, ls int) (lower float64, elo float64, upper float64) {
	N := float64(ws + ds + ls) // total number of games

	if N == 0 {
		return 0, 0, 0
	}

	w := float64(ws) / N // measured win probability
	d := float64(ds) / N // measured draw probability
	l := float64(ls) / N // measured loss probability

	// empirical mean of random variable
	mu := w + d/2

	// standard deviation of the random variable
	sigma := math.Sqrt(
		w*math.Pow(1-mu, 2)+
			d*math.Pow(0.5-mu, 2)+
			l*math.Pow(0-mu, 2),
	) / math.Sqrt(N)

	muMin := mu + phiInv(0.025)*sigma // lower bound
	muMax := mu + phiInv(0.975)*sigma // upper bound

	return scoreToElo(muMin), scoreToElo(mu), scoreToElo(muMax)
}

// PentaElo is like Elo, but works on game pairs instead of single games,
// which removes the bias of the side the engine plays in each game.
func PentaElo(lls, lds, dds, wds, wws int) (lower float64, elo float64, upper float64) {
	N := float64(lls + lds + dds + wds + wws) // total number of pairs

	if N == 0 {
		return 0, 0, 0
	}

	ll := float64(lls) / N // measured loss-loss probability
	ld := float64(lds) / N // measured loss-draw probability
	dd := float64(dds) / N // measured win-loss/draw-draw probability
	wd := float64(wds) / N // measured win-draw probability
	ww := float64(wws) / N // measured win-win probability

	// empirical mean of random variable
	mu := ww + 0.75*wd + 0.5*dd + 0.25*ld

	// standard deviation of the random variable
	sigma := math.Sqrt(
		ww*math.Pow(1-mu, 2)+
			wd*math.Pow(0.75-mu, 2)+
			dd*math.Pow(0.50-mu, 2)+
			ld*math.Pow(0.25-mu, 2)+
			ll*math.Pow(0.00-mu, 2),
	) / math.Sqrt(N)

	muMin := mu + phiInv(0.025)*sigma // lower bound
	muMax := mu + phiInv(0.975)*sigma // upper bound

	return scoreToElo(muMin), scoreToElo(mu), scoreToElo(muMax)
}

// scoreToElo converts an expected score to an elo difference.
func scoreToElo(x float64) float64 {
	switch {
	case x <= 0, x >= 1:
		return 0

	default:
		return -400 * math.Log10(1/x-1)
	}
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
