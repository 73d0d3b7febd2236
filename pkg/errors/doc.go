// Package errors defines PackError, the single error type returned across
// packforge, and the codes it carries.
//
// Codes are grouped by the stage that raises them:
//
//   - CONFIG_* from pkg/config while merging configuration layers
//   - DESCRIPTOR_* from pkg/descriptor while reading and flattening files
//   - PACK_NOT_FOUND, DUPLICATE_PACK, UNRESOLVED_DEPENDENCY,
//     CYCLIC_DEPENDENCY and DEPENDENCY_TOO_DEEP from pkg/packgraph
//   - CONFLICTING_PRESELECTION from pkg/exclusion
//
// Details hold the values a caller needs to act on the failure, such as the
// offending pack names, and are rendered in DetailKeys order. Match codes
// with IsErrorCode or errors.Is against a PackError of the same code.
package errors
