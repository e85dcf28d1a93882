package test

import (
	"github.com/plgd-dev/notification2/notification2/client"
)

const SubscriptionName = "hackathonSubscription"

func MakeConfig(url string) client.Config {
	return client.Config{
		URL:      url,
		User:     User,
		Password: Password,
		Subscription: client.SubscriptionConfig{
			Name: SubscriptionName,
		},
	}
}
