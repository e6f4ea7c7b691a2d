// Package kernel holds the value objects shared by the label domain:
// UUID identifiers for archived print jobs and Money for cash on delivery
// and insurance prices. Values are immutable and can only be built through
// their constructors.
package kernel
