package account

import (
	"github.com/eaglebank/eagle-bank/internal/domain/entity"
	errs "github.com/eaglebank/eagle-bank/internal/domain/error"
)

// Authorize is the single ownership guard applied by every account and
// transaction operation: the authenticated user must own the account.
// Callers resolve existence first, so a nil account never reaches this check.
func Authorize(userID uint64, acct *entity.Account) error {
	if !acct.IsOwnedBy(userID) {
		return errs.ErrForbidden
	}
	return nil
}
