//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// Gospel is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

//********************************************************************/
//*    PGMID.        INTEGER PRIME DECOMPOSER.                       */
//*    AUTHOR.       BERND R. FIX   >Y<                              */
//*    DATE WRITTEN. 07/02/05.                                       */
//*    COPYRIGHT.    (C) BY BERND R. FIX. ALL RIGHTS RESERVED.       */
//*                  LICENSED MATERIAL - PROGRAM PROPERTY OF THE     */
//*                  AUTHOR. REFER TO COPYRIGHT INSTRUCTIONS.        */
//*    REMARKS.                                                      */
//********************************************************************/

package factorizer

import (
	"github.com/bfix/primus/logger"
	"github.com/bfix/primus/math"
	"github.com/bfix/primus/rng"
)

// FactorFinder is implemented by each cascade method (spec.md 4.5's
// "factor_once(n, budget)" methods: Pollard rho/Brent, p-1, OLF, SQUFOF,
// ECM). Decomposition ("factor" and ECPP's
// "check_for_factor") is driven entirely by cascade.go -- there is no
// Factorizer type here dispatching across a registered algorithm map; the
// teacher's own dynamic-dispatch registry (keyed by an algorithm-id
// const) turned out to have no caller once the driver semantics in
// cascade.go replaced it, so it was removed rather than kept unreachable.
type FactorFinder interface {
	GetFactor(n *math.Int) *math.Int
}

// MAX_SMALL bounds the small primes that are (always) trial-divided: every
// prime below it is checked.
var MAX_SMALL = math.NewInt(25000)

// smallPrimes peels off every prime factor below MAX_SMALL via trial
// division, spec.md 4.5's "trial division | limit | factors < 10^6" row
// (MAX_SMALL here is smaller, tuned for the peel-then-escalate driver
// rather than a standalone trial-division budget).
// @param n - number to be factorized
// @return rem - reminder (after n is divided by all found primes)
// @return list - list of found prime factors
func smallPrimes(n *math.Int) (rem *math.Int, list []*math.Int) {
	rem = n
	for p := math.TWO; p.Cmp(MAX_SMALL) < 0; p = p.NextProbablePrime(128) {
		for rem.Mod(p).Equals(math.ZERO) {
			rem = rem.Div(p)
			list = append(list, p)
			if rng.Verbosity() > 0 {
				logger.Printf(logger.DBG, "[factorizer] trial division: peeled %s", p)
			}
		}
	}
	return
}
