// Package parts holds the commercial component value tables and picks the
// standard part closest to an ideal value.
//
// Tables are immutable and small, so selection is a linear scan. Ties go to
// the entry listed first.
package parts
