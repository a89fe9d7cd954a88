package notify

import (
	"fmt"
	"time"

	"grain-market/utils"
)

// Mailer sends outcome emails. Senders are best-effort collaborators:
// callers log failures and never fail the triggering request.
type Mailer interface {
	Send(toEmail, subject, body string) error
}

// LogMailer writes every message to the application log instead of
// delivering it. Stands in for a real provider in test environments.
type LogMailer struct{}

// NewLogMailer creates a LogMailer
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// Send logs the message at info level
func (m *LogMailer) Send(toEmail, subject, body string) error {
	utils.Info("outgoing email", map[string]any{
		"to":      toEmail,
		"subject": subject,
		"time":    time.Now().UTC().Format(time.RFC3339),
		"body":    body,
	})
	return nil
}

// AccreditationApprovedMessage builds the approval notification
func AccreditationApprovedMessage(userName string) (subject, body string) {
	subject = "Accreditation approved - Grain Marketplace"
	body = fmt.Sprintf(`Congratulations, %s!

Your accreditation request has been approved.
You can now take part in grain auctions.

Best regards,
The Grain Marketplace team`, userName)
	return subject, body
}

// AccreditationRejectedMessage builds the rejection notification
func AccreditationRejectedMessage(userName string) (subject, body string) {
	subject = "Accreditation rejected - Grain Marketplace"
	body = fmt.Sprintf(`Dear %s,

Unfortunately your accreditation request has been rejected.
Please contact us for further details.

Best regards,
The Grain Marketplace team`, userName)
	return subject, body
}

// AuctionWonMessage builds the winner notification with the lot summary
func AuctionWonMessage(userName, grainType string, quantity, winningBid float64) (subject, body string) {
	subject = "You won the auction! - Grain Marketplace"
	body = fmt.Sprintf(`Congratulations, %s!

You won the auction!

Details:
- Grain: %s
- Quantity: %.1f tons
- Your bid: %.2f

We will contact you shortly to arrange the details.

Best regards,
The Grain Marketplace team`, userName, grainType, quantity, winningBid)
	return subject, body
}
