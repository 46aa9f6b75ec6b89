/*
Package negotiate selects a representation of a resource from a request's "Accept" header.

[Accepts] answers which of a set of candidate media types a client prefers;
[Format] dispatches to the handler registered for that media type,
or to a default handler when no candidate is acceptable.

Candidates are ranked by the quality value of the most specific media range matching them,
then by how specific that range is;
ties are broken by the order the candidates were given in.
A request without an "Accept" header accepts anything,
so the first candidate wins.
*/
package negotiate
