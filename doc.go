// Package wayfind is a small toolkit for loading road networks from plain
// text map files and answering shortest-route questions about them.
//
// 🚀 What is wayfind?
//
//	A compact, file-to-answer pipeline that brings together:
//		• core:    the Network type — locations, bidirectional weighted connections
//		• mapfile: a line-oriented map-file loader (comments, blanks, FROM,TO,COST records)
//		• search:  single-source shortest-distance relaxation (heap or FIFO work list)
//		• route:   the query driver — validate labels, run a search, report the verdict
//		• config:  YAML application config with validation
//		• cmd/wayfind: the command-line surface
//
// ✨ Why choose wayfind?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest answers – “unreachable” is a result, not an error
//   - Pure library core – no I/O, no logging, no hidden state below cmd/
//   - Extensible – functional options and hooks (OnImprove…) for custom logic
//
// Quick ASCII example:
//
//	    A───5───B
//	     \      │
//	     10     3
//	       \    │
//	        └───C
//
//	The best route A→C costs 8.0 (via B), not 10.0 (direct road).
//
// A map file describing that triangle:
//
//	# three cities, three roads
//	A,B,5
//	B,C,3
//	A,C,10
//
// Dive into README.md for full examples and the file-format grammar.
//
//	go get github.com/katalvlaran/wayfind
package wayfind
