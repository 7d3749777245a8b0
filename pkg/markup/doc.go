/*
Package markup turns a domain.Explanation into text a host can display.

Two formats are supported: HTML with MathJax delimiters, which is what the web page
and the pure trinomial.Factor function return, and Markdown, which the CLI feeds to
a terminal renderer. Number formatting helpers (FormatSign, Fixed) are shared with
the step builder so that every surface prints values the same way.
*/
package markup
