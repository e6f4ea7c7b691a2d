// Package label lays out shipping labels for parcel.Package values.
//
// The Engine validates the packages, composes a sheet.Document from one of two
// layout tables (one label per A4 landscape page, or four labels per page in
// quadrants) and hands the document to a ports.LabelRenderer for output.
//
// Layouts are plain data: FullLayout and QuarterLayout return the slot tables,
// each slot naming the field it prints and where and how it is printed.
package label
