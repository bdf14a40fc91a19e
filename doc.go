/*
Package main: FOURTH -- almost FORTH, again

FOURTH is an interactive Forth-flavored interpreter. Unlike its threaded
cousins, it compiles nothing: every whitespace-separated word read from
input is dispatched against a dictionary of builtins and user definitions,
and evaluated on the spot against a shared data stack and a small linear
heap.

The machine has three chunks of state. The data stack is a LIFO of
host-width integers; truth is -1, falsehood is 0. The heap is a dense
array of cells whose addresses start at 1000; VARIABLE binds a name to a
fresh cell, ALLOT advances the frontier anonymously, and `!` and `@` store
and fetch through addresses the program pushes itself. The dictionary maps
names to user word bodies, stored as token sequences and re-interpreted on
every call.

Words come in two kinds. Simple words (arithmetic, comparisons, stack
shuffles, output) evaluate immediately. Structured words own their own
parse: `."` scoops up a string until its closing quote, `(` a comment
until `)`, and IF/DO/BEGIN and colon definitions accumulate bodies until
THEN/LOOP/UNTIL/`;`, pulling further input lines as needed and recursing
so that nested constructs close in the right order.

A session looks like:

	> : fac DUP 1 > IF DUP 1 - fac * ELSE DROP 1 THEN ;
	> 5 fac .
	120
	> VARIABLE X  100 X !  X @ .
	100
	> quit

Bad input is reported on the diagnostic channel with a bracketed tag --
[BAD WORD], [STACK UNDERFLOW], [SYNTAX], and friends -- and the session
carries on; only an unknown word abandons the rest of its line, so later
words do not cascade errors off a missing effect.

Input comes from the terminal (with line editing and a "> " prompt), from
a file named on the command line (echoed line by line as read), or from a
file pulled in mid-stream by `:: path`.
*/
package main
