package services

import "log"

// withCompensation runs apply, then commit. When commit fails, undo
// reverses apply, so the pair of writes behind one mutation — event row
// and ledger delta — lands together or not at all; a surviving half
// would break the totals-equal-sum-of-events rule. When undo itself
// fails the commit error still wins, and the undo failure is logged
// because only an operator can square the record at that point.
func withCompensation(apply, commit, undo func() error) error {
	if err := apply(); err != nil {
		return err
	}
	err := commit()
	if err == nil {
		return nil
	}
	if uerr := undo(); uerr != nil {
		log.Printf("compensation failed: %v (after: %v)", uerr, err)
	}
	return err
}
