package uri

import (
	"fmt"

	"github.com/jtacoma/uritemplates"
)

const (
	SubscriptionIDKey = "subscriptionId"

	PageSizeQueryKey       = "pageSize"
	CurrentPageQueryKey    = "currentPage"
	WithTotalPagesQueryKey = "withTotalPages"
	SubscriptionQueryKey   = "subscription"

	API = "/notification2"

	// GET /notification2/subscriptions -> list subscriptions page by page
	// POST /notification2/subscriptions -> create subscription
	Subscriptions = API + "/subscriptions"
	// DELETE /notification2/subscriptions/{subscriptionId} -> delete subscription
	AliasSubscription = Subscriptions + "/{" + SubscriptionIDKey + "}"

	// POST /notification2/token -> create token for the consumer of the subscription
	Token = API + "/token"
)

// Expand fills the variables of the uri template.
func Expand(template string, values map[string]interface{}) (string, error) {
	tmp, err := uritemplates.Parse(template)
	if err != nil {
		return "", fmt.Errorf("cannot parse uri template('%v'): %w", template, err)
	}
	path, err := tmp.Expand(values)
	if err != nil {
		return "", fmt.Errorf("cannot expand uri template('%v'): %w", template, err)
	}
	return path, nil
}

// SubscriptionPath returns path of the subscription resource.
func SubscriptionPath(subscriptionID string) (string, error) {
	return Expand(AliasSubscription, map[string]interface{}{
		SubscriptionIDKey: subscriptionID,
	})
}
