/*
Package status tracks what a copy run did to each matched entry.

🎯 Purpose:
- Records one FileEntry per source entry (copied, replaced, skipped, ignored)
- Counts outcomes for the closing log line
- Renders an optional summary table
*/
package status
