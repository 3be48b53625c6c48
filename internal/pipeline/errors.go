package pipeline

import "fmt"

// StructureRepairError means PDBFixer could not repair the input
// structure. Detail carries whatever the tool reported.
type StructureRepairError struct {
	Detail string
}

func (e StructureRepairError) Error() string {
	return fmt.Sprintf("structure repair failed: %s", e.Detail)
}

// ProtonationAssignmentError means pdb2pqr rejected the repaired
// structure or the requested parameters.
type ProtonationAssignmentError struct {
	Detail string
}

func (e ProtonationAssignmentError) Error() string {
	return fmt.Sprintf("protonation assignment failed: %s (pdb2pqr writes its own log next to the output)", e.Detail)
}

// ConversionError means Open Babel could not convert the PQR output
// back to PDB.
type ConversionError struct {
	Detail string
}

func (e ConversionError) Error() string {
	return fmt.Sprintf("format conversion failed: %s", e.Detail)
}
