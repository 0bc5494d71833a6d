// Package cli implements the gophclip command line:
//
//	gophclip [-a addr] [-t seconds] share [-e 1h|1d|7d|never] [text...]
//	gophclip [-a addr] [-t seconds] fetch CODE
//
// share reads the text from standard input when no arguments are given and
// stdin is not a terminal, so `cat notes.txt | gophclip share` works.
package cli
