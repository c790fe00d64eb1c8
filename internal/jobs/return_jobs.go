package jobs

import (
	"context"

	"rechtent-backend/internal/logger"
)

// RemindPendingReturns mails every admin when return requests are waiting
// for verification. The configured ops address is the fallback when no
// admin accounts exist yet.
func (jr *JobRunner) RemindPendingReturns() {
	jr.runWithRecovery("RemindPendingReturns", func() {
		ctx := context.Background()

		pending, err := jr.services.Return.CountPending(ctx)
		if err != nil {
			logger.Error("Failed to count pending return requests", "error", err)
			return
		}
		if pending == 0 {
			logger.Info("No pending return requests")
			return
		}

		admins, err := jr.store.ListAdmins(ctx)
		if err != nil {
			logger.Error("Failed to list admin accounts", "error", err)
			return
		}
		recipients := make([]string, 0, len(admins))
		for _, admin := range admins {
			recipients = append(recipients, admin.Email)
		}
		if len(recipients) == 0 && jr.config.Email.AdminEmail != "" {
			recipients = append(recipients, jr.config.Email.AdminEmail)
		}
		if len(recipients) == 0 {
			logger.Warn("Pending returns exist but no admin recipient is available", "pending", pending)
			return
		}

		for _, to := range recipients {
			if err := jr.services.Email.SendPendingReturnsReminder(ctx, to, pending); err != nil {
				logger.Error("Failed to send pending returns reminder", "to", to, "error", err)
			}
		}
		logger.Info("Sent pending returns reminder", "pending", pending, "recipients", len(recipients))
	})
}
