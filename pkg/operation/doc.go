/*
Package operation implements the copy pass.

	+-------------+
	|   Config    |
	+------+------+
	       |
	+------+------+      +-------------+
	|  Operation  | ---> |   fileops   |
	| (Collision) |      | (afero fs)  |
	+------+------+      +-------------+
	       |
	+------+------+
	|   Report    |
	+-------------+

🔄 Flow:
1. Lists the source directory one level deep and keeps entries matching the pattern
2. Skips matching directories with a warning
3. For each file: copies it, skips it when a same-sized file already exists, or
   renames the existing file to <stem>-<tag><ext> and then copies
4. Stops at the first error. Files handled before it stay handled

Size is the only signal used to decide that a file was already copied.

⚠️ Two runs against the same destination at the same time race on the
check-rename-copy sequence. That is not supported.
*/
package operation
