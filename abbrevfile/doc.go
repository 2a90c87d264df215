/*
Package abbrevfile reads abbreviations from resource files.

Abbreviations are enclosed in a \whitelist block, one per line:

	\whitelist{
	Mr.
	e.g.
	U. S.
	}

Lines starting with '%' are comments.
*/
package abbrevfile
