/*
Package pass provides a library to decode pass (https://passwordstore.org)
entries into structured data.


Entry Format

pass entries use an informal, line oriented schema. The first line always
holds the secret itself. By convention, many consumers of pass data annotate
the entry with additional "key: value" directives on the following lines:

   <secret line>
   [<key>: <value>]*
   [<free-form comment line>]*

The secret line is kept verbatim, so leading and trailing spaces are
preserved. Lines are separated by '\n'; a trailing '\r' on a line is treated
as part of the line terminator.


Directives

The recognized directive keys are "login" and "url". Keys are matched
case-insensitively at the start of the line (leading whitespace is tolerated)
and the value is the remainder of the line after the first ':', trimmed of
surrounding whitespace. Lines that do not carry a recognized directive are
not an error: they are retained in order as opaque comments.

If the same directive occurs more than once, the first occurrence wins and
the remaining duplicates fall through to the comments.


Limitation

The package only decodes the textual convention. Locating an entry in a
password store, decrypting it and managing multiple entries are the
responsibility of the caller; a typical embedding application obtains the
raw bytes by running the pass binary and feeding its standard output to
Decode.
*/
package pass
