package lead

import (
	"context"
	"errors"
	"testing"
	"time"

	"aerotours/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Mock stores

type MockLeadStore struct {
	mock.Mock
}

func (m *MockLeadStore) Create(ctx context.Context, lead *domain.ContactRequest) error {
	args := m.Called(ctx, lead)
	if lead != nil {
		lead.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

type MockDestinationResolver struct {
	mock.Mock
}

func (m *MockDestinationResolver) GetBySlug(ctx context.Context, slug string) (*domain.Destination, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Destination), args.Error(1)
}

func (m *MockDestinationResolver) GetActive(ctx context.Context) ([]domain.Destination, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Destination), args.Error(1)
}

type MockTourResolver struct {
	mock.Mock
}

func (m *MockTourResolver) GetBySlug(ctx context.Context, slug string) (*domain.AirTour, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirTour), args.Error(1)
}

func (m *MockTourResolver) GetActive(ctx context.Context) ([]domain.AirTour, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AirTour), args.Error(1)
}

// chanNotifier signals delivery so tests can wait on the detached goroutine.
type chanNotifier struct {
	got chan NotifyPayload
	err error
}

func newChanNotifier() *chanNotifier {
	return &chanNotifier{got: make(chan NotifyPayload, 1)}
}

func (n *chanNotifier) Notify(payload NotifyPayload) error {
	n.got <- payload
	return n.err
}

func TestSubmitCharterSuccess(t *testing.T) {
	leads := new(MockLeadStore)
	destinations := new(MockDestinationResolver)
	tours := new(MockTourResolver)
	notifier := newChanNotifier()

	leads.On("Create", mock.Anything, mock.Anything).Return(nil)
	destinations.On("GetBySlug", mock.Anything, "holbox").
		Return(&domain.Destination{ID: 7, Slug: "holbox"}, nil)

	service := NewService(leads, destinations, tours, notifier)

	lead, err := service.Submit(context.Background(), validCharterForm(), "$650 USD")
	require.NoError(t, err)
	require.NotNil(t, lead)

	assert.Equal(t, int64(42), lead.ID)
	assert.Equal(t, domain.LeadPending, lead.Status)
	assert.Equal(t, domain.ServiceCharter, lead.ServiceType)
	require.NotNil(t, lead.TravelDate)
	assert.Equal(t, "2025-03-10", lead.TravelDate.String())
	require.NotNil(t, lead.DestinationID)
	assert.Equal(t, int64(7), *lead.DestinationID)
	// Tour branch stays null on a charter lead.
	assert.Nil(t, lead.Tour)
	assert.Nil(t, lead.NumberOfPassengers)

	select {
	case payload := <-notifier.got:
		assert.Equal(t, "charter", payload.ServiceType)
		assert.Equal(t, "$650 USD", payload.PreSelectedPrice)
	case <-time.After(time.Second):
		t.Fatal("notification was never dispatched")
	}
}

func TestSubmitTourResolvesSlug(t *testing.T) {
	leads := new(MockLeadStore)
	destinations := new(MockDestinationResolver)
	tours := new(MockTourResolver)

	leads.On("Create", mock.Anything, mock.Anything).Return(nil)
	tours.On("GetBySlug", mock.Anything, "zona-hotelera").
		Return(&domain.AirTour{ID: 3, Slug: "zona-hotelera"}, nil)

	service := NewService(leads, destinations, tours, nil)

	lead, err := service.Submit(context.Background(), validTourForm(), "")
	require.NoError(t, err)

	require.NotNil(t, lead.TourID)
	assert.Equal(t, int64(3), *lead.TourID)
	require.NotNil(t, lead.Tour)
	assert.Equal(t, "zona-hotelera", *lead.Tour)
	require.NotNil(t, lead.NumberOfPassengers)
	assert.Equal(t, 2, *lead.NumberOfPassengers)
	assert.Nil(t, lead.DepartureLocation)
}

func TestSubmitUnknownSlugIsSilent(t *testing.T) {
	leads := new(MockLeadStore)
	destinations := new(MockDestinationResolver)
	tours := new(MockTourResolver)

	leads.On("Create", mock.Anything, mock.Anything).Return(nil)
	destinations.On("GetBySlug", mock.Anything, "holbox").
		Return(nil, gorm.ErrRecordNotFound)

	service := NewService(leads, destinations, tours, nil)

	lead, err := service.Submit(context.Background(), validCharterForm(), "")
	require.NoError(t, err)

	// The raw slug is kept; only the foreign key stays null.
	assert.Nil(t, lead.DestinationID)
	require.NotNil(t, lead.Destination)
	assert.Equal(t, "holbox", *lead.Destination)
}

func TestSubmitValidationFailure(t *testing.T) {
	leads := new(MockLeadStore)
	service := NewService(leads, new(MockDestinationResolver), new(MockTourResolver), nil)

	form := validCharterForm()
	form.Email = "broken"

	_, err := service.Submit(context.Background(), form, "")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Fields["email"])
	leads.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitClearsStaleBranchFields(t *testing.T) {
	leads := new(MockLeadStore)
	destinations := new(MockDestinationResolver)
	tours := new(MockTourResolver)

	leads.On("Create", mock.Anything, mock.Anything).Return(nil)
	tours.On("GetBySlug", mock.Anything, "zona-hotelera").
		Return(&domain.AirTour{ID: 3, Slug: "zona-hotelera"}, nil)

	service := NewService(leads, destinations, tours, nil)

	// A client that switched charter→tour but kept stale charter fields.
	form := validTourForm()
	form.DepartureLocation = "cancun"
	form.Destination = "holbox"
	form.ReturnDate = "2025-03-15"

	lead, err := service.Submit(context.Background(), form, "")
	require.NoError(t, err)

	assert.Nil(t, lead.DepartureLocation)
	assert.Nil(t, lead.Destination)
	assert.Nil(t, lead.ReturnDate)
	destinations.AssertNotCalled(t, "GetBySlug", mock.Anything, mock.Anything)
}

func TestSubmitPersistenceFailure(t *testing.T) {
	leads := new(MockLeadStore)
	destinations := new(MockDestinationResolver)
	notifier := newChanNotifier()

	leads.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))
	destinations.On("GetBySlug", mock.Anything, "holbox").
		Return(&domain.Destination{ID: 7, Slug: "holbox"}, nil)

	service := NewService(leads, destinations, new(MockTourResolver), notifier)

	_, err := service.Submit(context.Background(), validCharterForm(), "")
	assert.ErrorIs(t, err, ErrPersistence)

	// No notification goes out for a lead that was never recorded.
	select {
	case <-notifier.got:
		t.Fatal("notification dispatched despite failed insert")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubmitNotificationFailureDoesNotAffectResult(t *testing.T) {
	leads := new(MockLeadStore)
	destinations := new(MockDestinationResolver)
	notifier := newChanNotifier()
	notifier.err = errors.New("smtp down")

	leads.On("Create", mock.Anything, mock.Anything).Return(nil)
	destinations.On("GetBySlug", mock.Anything, "holbox").
		Return(&domain.Destination{ID: 7, Slug: "holbox"}, nil)

	service := NewService(leads, destinations, new(MockTourResolver), notifier)

	lead, err := service.Submit(context.Background(), validCharterForm(), "")
	require.NoError(t, err)
	assert.NotNil(t, lead)

	select {
	case <-notifier.got:
	case <-time.After(time.Second):
		t.Fatal("notification was never attempted")
	}
}

func TestBuildPrefillLockedDestination(t *testing.T) {
	destinations := new(MockDestinationResolver)
	destinations.On("GetBySlug", mock.Anything, "holbox").Return(&domain.Destination{
		ID:     7,
		Slug:   "holbox",
		NameEs: "Holbox",
		NameEn: "Holbox",
		AircraftPricing: domain.AircraftPricing{
			{Aircraft: "Cessna 206", MaxPassengers: 5, Price: 650},
		},
	}, nil)

	service := NewService(new(MockLeadStore), destinations, new(MockTourResolver), nil)

	pc, err := service.BuildPrefill(context.Background(), "holbox", "", "Cessna 206", "$999 USD")
	require.NoError(t, err)

	assert.True(t, pc.Locked)
	assert.Equal(t, "charter", pc.ServiceType)
	require.NotNil(t, pc.Destination)
	assert.Equal(t, "holbox", pc.Destination.Slug)
	// The catalog's own price wins over the deep-link parameter.
	assert.Equal(t, "$650 USD", pc.DisplayPrice)
}

func TestBuildPrefillUnknownSlugFallsBack(t *testing.T) {
	destinations := new(MockDestinationResolver)
	destinations.On("GetBySlug", mock.Anything, "atlantis").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(new(MockLeadStore), destinations, new(MockTourResolver), nil)

	pc, err := service.BuildPrefill(context.Background(), "atlantis", "", "", "")
	require.NoError(t, err)
	assert.False(t, pc.Locked)
	assert.Empty(t, pc.ServiceType)
	assert.Nil(t, pc.Destination)
}

func TestGetFormOptions(t *testing.T) {
	destinations := new(MockDestinationResolver)
	tours := new(MockTourResolver)

	destinations.On("GetActive", mock.Anything).Return([]domain.Destination{
		{Slug: "holbox", NameEs: "Holbox", NameEn: "Holbox"},
	}, nil)
	tours.On("GetActive", mock.Anything).Return([]domain.AirTour{
		{Slug: "zona-hotelera", NameEs: "Zona Hotelera", NameEn: "Hotel Zone"},
	}, nil)

	service := NewService(new(MockLeadStore), destinations, tours, nil)

	opts, err := service.GetFormOptions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.DepartureLocations(), opts.DepartureLocations)
	assert.Len(t, opts.DepartureTimeSlots, 15)
	require.Len(t, opts.Destinations, 1)
	assert.Equal(t, "holbox", opts.Destinations[0].Slug)
	require.Len(t, opts.Tours, 1)
	assert.Equal(t, "zona-hotelera", opts.Tours[0].Slug)
}
