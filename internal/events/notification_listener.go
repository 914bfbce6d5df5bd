package events

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var largeChangeThreshold = decimal.NewFromInt(1000)

// NotificationListener logs a line per event and warns on balance swings above 1000.
type NotificationListener struct {
	logger logrus.FieldLogger
}

func NewNotificationListener(logger logrus.FieldLogger) *NotificationListener {
	return &NotificationListener{logger: logger}
}

func (n *NotificationListener) Handle(event Event) error {
	switch e := event.(type) {
	case AccountCreated:
		n.logger.WithFields(logrus.Fields{
			"accountID": e.Account.ID,
			"ownerID":   e.Account.OwnerID,
			"balance":   e.Account.Balance.String(),
		}).Info("Notification: account created")
	case BalanceChanged:
		n.logger.WithFields(logrus.Fields{
			"accountID":  e.Account.ID,
			"oldBalance": e.OldBalance.String(),
			"newBalance": e.NewBalance.String(),
		}).Info("Notification: balance changed")

		change := e.NewBalance.Sub(e.OldBalance).Abs()
		if change.GreaterThan(largeChangeThreshold) {
			n.logger.WithFields(logrus.Fields{
				"accountID": e.Account.ID,
				"change":    change.String(),
			}).Warn("Notification: significant balance change")
		}
	case AccountDeleted:
		n.logger.WithField("accountID", e.AccountID).Info("Notification: account deleted")
	}
	return nil
}
