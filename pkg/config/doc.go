/*
Package config holds the validated options of a copy run.

	+-------------+       +-------------+
	|  CLI flags  | ----> |   Config    |
	| (cobra)     |       | (immutable) |
	+-------------+       +------+------+
	                             |
	                      +------+------+
	                      |  operation  |
	                      +-------------+

🎯 Purpose:
- Checks that the required options are present
- Rejects patterns and tags that would escape a single directory level
- Renders the options for the start-up log line

There is no configuration file. Every run is described entirely by its flags.
*/
package config
