package bus

import (
	"testing"

	"storefront/internal/cart"
	"storefront/models"

	"github.com/stretchr/testify/assert"
)

func TestBus_DeliversInSubscriptionOrder(t *testing.T) {
	b := New()
	var order []int

	b.Subscribe(TopicCartUpdate, func(any) { order = append(order, 1) })
	b.Subscribe(TopicCartUpdate, func(any) { order = append(order, 2) })
	b.Subscribe(TopicCartUpdate, func(any) { order = append(order, 3) })

	b.Publish(TopicCartUpdate, cart.CartEvent{})

	assert.Equal(t, []int{1, 2, 3}, order, "доставка должна идти в порядке подписки")
}

func TestBus_PublishWithoutSubscribersIsNoop(t *testing.T) {
	b := New()

	assert.NotPanics(t, func() {
		b.Publish(TopicCartUpdate, cart.CartEvent{CartData: models.CartMap{"p1": 1}})
	})
}

func TestBus_PayloadReachesSubscriber(t *testing.T) {
	b := New()
	var got cart.CartEvent

	b.Subscribe(TopicCartUpdate, func(payload any) {
		got = payload.(cart.CartEvent)
	})

	event := cart.CartEvent{
		CartData:  models.CartMap{"p1": 2},
		ProductID: "p1",
		Price:     100,
	}
	b.Publish(TopicCartUpdate, event)

	assert.Equal(t, event, got)
}

func TestBus_Unsubscribe(t *testing.T) {
	b := New()
	calls := 0

	unsub := b.Subscribe(TopicFavoritesUpdate, func(any) { calls++ })
	b.Publish(TopicFavoritesUpdate, cart.FavoritesEvent{})
	unsub()
	b.Publish(TopicFavoritesUpdate, cart.FavoritesEvent{})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, b.SubscriberCount(TopicFavoritesUpdate))
}

func TestBus_UnsubscribeTwiceIsSafe(t *testing.T) {
	b := New()
	unsub := b.Subscribe(TopicCartUpdate, func(any) {})

	unsub()
	assert.NotPanics(t, unsub)
}

func TestBus_TopicsAreIsolated(t *testing.T) {
	b := New()
	cartCalls, favCalls := 0, 0

	b.Subscribe(TopicCartUpdate, func(any) { cartCalls++ })
	b.Subscribe(TopicFavoritesUpdate, func(any) { favCalls++ })

	b.Publish(TopicCartUpdate, cart.CartEvent{})

	assert.Equal(t, 1, cartCalls)
	assert.Equal(t, 0, favCalls)
}

func TestBus_PanickingSubscriberDoesNotBlockOthers(t *testing.T) {
	b := New()
	delivered := false

	b.Subscribe(TopicCartUpdate, func(any) { panic("сломанный подписчик") })
	b.Subscribe(TopicCartUpdate, func(any) { delivered = true })

	assert.NotPanics(t, func() { b.Publish(TopicCartUpdate, cart.CartEvent{}) })
	assert.True(t, delivered)
}
