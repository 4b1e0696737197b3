/*
Package iteratable implements iteratable container data structures.

Set is a special purpose set type, suitable mainly for implementing algorithms
around scanners, parsers, etc. These kinds of algorithms are often more straightforward
to describe as set constructions and operations. For parser tables to be
reproducible, sets remember the order in which elements have been inserted, and
iteration follows this order.

Unusually, all set operations are destructive! Use Copy() for keeping an operand.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package iteratable
