package orders

import (
	"context"
	"errors"
	"sync"
	"testing"

	"storefront/internal/bus"
	"storefront/internal/cart"
	"storefront/internal/mocks"
	"storefront/models"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() models.ContactForm {
	return models.ContactForm{
		Name:        "Айбек",
		Phone:       "+996700123456",
		Country:     "KG",
		ContactType: "whatsapp",
		Language:    models.LanguageRu,
	}
}

func TestSubmit_SuccessClearsStateAndEmitsEmptyCartOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mocks.NewMockNotifier(ctrl)
	prices := mocks.NewMockPriceSource(ctrl)
	events := bus.New()

	prices.EXPECT().PriceByID(gomock.Any(), "p1").Return(500.0, nil)
	notifier.EXPECT().SendOrder(gomock.Any(), gomock.Any()).Return(nil)

	var emitted []cart.CartEvent
	events.Subscribe(bus.TopicCartUpdate, func(payload any) {
		emitted = append(emitted, payload.(cart.CartEvent))
	})

	cleared := 0
	s := NewSubmitter(notifier, prices, events)

	req, err := s.Submit(context.Background(), "s1", validForm(),
		models.CartMap{"p1": 2},
		models.PriceCache{"p1": 500},
		models.DetailCache{"p1": {Name: "Диван"}},
		func() { cleared++ },
	)

	require.NoError(t, err)
	assert.Equal(t, 1, cleared, "все три хранилища чистятся ровно один раз")
	require.Len(t, emitted, 1, "событие с пустой корзиной уходит ровно один раз")
	assert.Empty(t, emitted[0].CartData)
	assert.Equal(t, 1000.0, req.TotalSum)
	assert.Equal(t, "Диван", req.Items[0].Name)
}

func TestSubmit_NotifierFailureLeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mocks.NewMockNotifier(ctrl)
	prices := mocks.NewMockPriceSource(ctrl)
	events := bus.New()

	prices.EXPECT().PriceByID(gomock.Any(), "p1").Return(500.0, nil)
	notifier.EXPECT().SendOrder(gomock.Any(), gomock.Any()).Return(errors.New("телеграм недоступен"))

	eventCount := 0
	events.Subscribe(bus.TopicCartUpdate, func(any) { eventCount++ })

	cleared := false
	s := NewSubmitter(notifier, prices, events)

	cartMap := models.CartMap{"p1": 2}
	priceCache := models.PriceCache{"p1": 500}
	details := models.DetailCache{"p1": {Name: "Диван"}}

	_, err := s.Submit(context.Background(), "s1", validForm(), cartMap, priceCache, details,
		func() { cleared = true })

	require.Error(t, err)
	assert.False(t, cleared, "при ошибке отправки хранилища не трогаем")
	assert.Equal(t, 0, eventCount)

	// входные снимки побитово не изменены
	assert.Equal(t, models.CartMap{"p1": 2}, cartMap)
	assert.Equal(t, models.PriceCache{"p1": 500}, priceCache)
	assert.Equal(t, "Диван", details["p1"].Name)
}

func TestSubmit_InvalidPhoneMakesNoNetworkCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// ни нотификатор, ни источник цен не должны вызываться
	notifier := mocks.NewMockNotifier(ctrl)
	prices := mocks.NewMockPriceSource(ctrl)

	form := validForm()
	form.Phone = "abc"

	cleared := false
	s := NewSubmitter(notifier, prices, bus.New())

	_, err := s.Submit(context.Background(), "s1", form,
		models.CartMap{"p1": 1}, models.PriceCache{"p1": 100}, models.DetailCache{},
		func() { cleared = true })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Phone")
	assert.False(t, cleared)
}

func TestSubmit_EmptyCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewSubmitter(mocks.NewMockNotifier(ctrl), mocks.NewMockPriceSource(ctrl), bus.New())

	_, err := s.Submit(context.Background(), "s1", validForm(),
		models.CartMap{}, models.PriceCache{}, models.DetailCache{}, nil)

	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestSubmit_StalePriceReplacedFromCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mocks.NewMockNotifier(ctrl)
	prices := mocks.NewMockPriceSource(ctrl)

	// в кэше 500, каталог говорит 750 — в заказ идет 750
	prices.EXPECT().PriceByID(gomock.Any(), "p1").Return(750.0, nil)

	var sent *models.OrderRequest
	notifier.EXPECT().SendOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *models.OrderRequest) error {
			sent = req
			return nil
		})

	s := NewSubmitter(notifier, prices, bus.New())

	_, err := s.Submit(context.Background(), "s1", validForm(),
		models.CartMap{"p1": 2}, models.PriceCache{"p1": 500},
		models.DetailCache{"p1": {Name: "Диван"}}, func() {})

	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, 750.0, sent.Items[0].Price)
	assert.Equal(t, 1500.0, sent.TotalSum)
}

func TestSubmit_CatalogUnavailableKeepsCachedPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mocks.NewMockNotifier(ctrl)
	prices := mocks.NewMockPriceSource(ctrl)

	prices.EXPECT().PriceByID(gomock.Any(), "p1").Return(0.0, errors.New("каталог недоступен"))

	var sent *models.OrderRequest
	notifier.EXPECT().SendOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *models.OrderRequest) error {
			sent = req
			return nil
		})

	s := NewSubmitter(notifier, prices, bus.New())

	_, err := s.Submit(context.Background(), "s1", validForm(),
		models.CartMap{"p1": 1}, models.PriceCache{"p1": 500},
		models.DetailCache{"p1": {Name: "Диван"}}, func() {})

	require.NoError(t, err)
	assert.Equal(t, 500.0, sent.Items[0].Price)
}

func TestSubmit_MissingDetailFallsBackToID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mocks.NewMockNotifier(ctrl)
	prices := mocks.NewMockPriceSource(ctrl)

	prices.EXPECT().PriceByID(gomock.Any(), "p9").Return(100.0, nil)

	var sent *models.OrderRequest
	notifier.EXPECT().SendOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *models.OrderRequest) error {
			sent = req
			return nil
		})

	s := NewSubmitter(notifier, prices, bus.New())

	_, err := s.Submit(context.Background(), "s1", validForm(),
		models.CartMap{"p9": 1}, models.PriceCache{}, models.DetailCache{}, func() {})

	require.NoError(t, err)
	assert.Equal(t, "Товар p9", sent.Items[0].Name)
}

func TestSubmit_InFlightGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mocks.NewMockNotifier(ctrl)
	prices := mocks.NewMockPriceSource(ctrl)
	s := NewSubmitter(notifier, prices, bus.New())

	prices.EXPECT().PriceByID(gomock.Any(), "p1").Return(100.0, nil)

	started := make(chan struct{})
	finish := make(chan struct{})
	notifier.EXPECT().SendOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, *models.OrderRequest) error {
			close(started)
			<-finish
			return nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := s.Submit(context.Background(), "s1", validForm(),
			models.CartMap{"p1": 1}, models.PriceCache{"p1": 100}, models.DetailCache{}, func() {})
		assert.NoError(t, err)
	}()

	<-started
	// вторая отправка той же сессии, пока первая в полете
	_, err := s.Submit(context.Background(), "s1", validForm(),
		models.CartMap{"p1": 1}, models.PriceCache{"p1": 100}, models.DetailCache{}, func() {})
	assert.ErrorIs(t, err, ErrInFlight)

	close(finish)
	wg.Wait()
}
