/*
Package domain contains the core domain models for the trinomial factorizer.

It defines the values that flow through a factorization: the parsed coefficients,
the roots of the auxiliary equation, the explanatory steps and the final result.
This package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Coefficients: The integers a, b and c of ax^2+bx+c.
  - Roots: The two numbers m and n with m+n = b and m*n = ac.
  - Step: One numbered block of the explanation.
  - Explanation: The full ordered step sequence plus the computed values.
  - Result: What adapters hand back to a caller (markup, outcome, cache flag).
*/
package domain
