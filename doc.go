/*
Copyright © 2026 lpmodel contributors

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

/*

Package lpmodel is a modeling layer for linear, mixed-integer and low-degree
quadratic optimization problems. It builds a Problem — an objective
polynomial plus a set of constraints over named decision variables — and
submits it to an external solver binary.

As an example of the API:

	problem, _ := lpmodel.NewProblem(lpmodel.Maximize)
	x, xp, _ := problem.NewVariable("x", lpmodel.WithBounds(0, 10))
	_ = x
	_ = problem.Maximize(xp)

	result, err := solve.Solve(context.Background(), problem, solve.Options{
		SolverPath: "/usr/local/bin/solver",
	})
	// result.Tag == solve.Optimal, result.Solution.Objective == 10.0

The package is organized the way the library it is grounded on organizes
itself: the root package holds the Problem/Variable/Constraint model, the
poly subpackage holds the underlying polynomial algebra, the lp subpackage
serializes a Problem to solver-readable text, and the solve subpackage
drives the external solver process and parses its output.

Presolving, MPS-format reading and in-process solving are not implemented
here: this package's job ends at producing LP text and interpreting the
solver's reply. The solver itself is an injected external dependency (a
binary path), not something this package locates, downloads, or ships.

*/
package lpmodel
