package appointments

import (
	"context"
	"creapar-service/internal/app/contracts"
	"creapar-service/internal/app/models"
	"creapar-service/internal/app/services/core/slots"
	"creapar-service/internal/pkg/constvars"
	"creapar-service/internal/pkg/dto/requests"
	"creapar-service/internal/pkg/exceptions"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type queuedMessage struct {
	destination string
	message     string
}

type recordingDispatcher struct {
	mu       sync.Mutex
	reject   bool
	messages []queuedMessage
}

func (d *recordingDispatcher) Enqueue(destination, message string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.reject {
		return false
	}
	d.messages = append(d.messages, queuedMessage{destination: destination, message: message})
	return true
}

type failingInsertRepository struct {
	contracts.AppointmentRepository
	err error
}

func (repo *failingInsertRepository) Insert(ctx context.Context, appointment *models.Appointment) error {
	return repo.err
}

// gate parks each caller until the test lets it through.
type gate struct {
	arrived chan struct{}
	release chan struct{}
}

func newGate() *gate {
	return &gate{arrived: make(chan struct{}), release: make(chan struct{})}
}

func (g *gate) pass() {
	g.arrived <- struct{}{}
	<-g.release
}

// waitArrival fails the test if no caller reaches the gate in time.
func (g *gate) waitArrival(t *testing.T) {
	t.Helper()
	select {
	case <-g.arrived:
	case <-time.After(2 * time.Second):
		t.Fatal("no caller reached the gate")
	}
}

// gatedFindByIDRepository holds callers after they have read the appointment.
type gatedFindByIDRepository struct {
	contracts.AppointmentRepository
	gate *gate
}

func (repo *gatedFindByIDRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := repo.AppointmentRepository.FindByID(ctx, appointmentID)
	repo.gate.pass()
	return appointment, err
}

// gatedInsertRepository holds callers between claiming the slot and writing the ledger.
type gatedInsertRepository struct {
	contracts.AppointmentRepository
	gate *gate
}

func (repo *gatedInsertRepository) Insert(ctx context.Context, appointment *models.Appointment) error {
	repo.gate.pass()
	return repo.AppointmentRepository.Insert(ctx, appointment)
}

func waitResult(t *testing.T, results <-chan error) error {
	t.Helper()
	select {
	case err := <-results:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("operation did not finish")
		return nil
	}
}

type bookingFixture struct {
	usecase         contracts.AppointmentUsecase
	slotRepo        contracts.SlotRepository
	appointmentRepo contracts.AppointmentRepository
	dispatcher      *recordingDispatcher
}

func newBookingFixture(t *testing.T) bookingFixture {
	t.Helper()
	slotRepo := slots.NewSlotMemoryRepository()
	appointmentRepo := NewAppointmentMemoryRepository()
	dispatcher := &recordingDispatcher{}
	return bookingFixture{
		usecase:         NewAppointmentUsecase(slotRepo, appointmentRepo, dispatcher, zap.NewNop()),
		slotRepo:        slotRepo,
		appointmentRepo: appointmentRepo,
		dispatcher:      dispatcher,
	}
}

func (f bookingFixture) addSlot(t *testing.T, id, date, clock string) {
	t.Helper()
	err := f.slotRepo.Insert(context.Background(), &models.Slot{
		ID:          id,
		Date:        date,
		Time:        clock,
		Type:        constvars.SlotTypeAppointment,
		IsAvailable: true,
		CreatedAt:   time.Now(),
	})
	require.NoError(t, err)
}

// assertAvailabilityMatchesLedger checks that a slot is available exactly
// when no confirmed appointment holds it.
func (f bookingFixture) assertAvailabilityMatchesLedger(t *testing.T, slotID string) {
	t.Helper()
	ctx := context.Background()
	slot, err := f.slotRepo.FindByID(ctx, slotID)
	require.NoError(t, err)
	require.NotNil(t, slot)
	active, err := f.appointmentRepo.FindActiveBySlot(ctx, slotID)
	require.NoError(t, err)
	assert.Equal(t, slot.IsAvailable, active == nil, "slot %s availability disagrees with ledger", slotID)
}

func bookingRequest(slotID string) *requests.CreateAppointment {
	notes := "first visit"
	return &requests.CreateAppointment{
		SlotID:     slotID,
		ClientName: "  Ana Souza ",
		WhatsApp:   "+55 11 99999-0000",
		Notes:      &notes,
		Date:       "2024-01-01",
		Time:       "08:00:00",
	}
}

func TestAppointmentUsecase_BookSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("Books Available Slot And Queues Confirmation", func(t *testing.T) {
		f := newBookingFixture(t)
		f.addSlot(t, "s1", "2024-01-01", "08:00:00")

		appointment, err := f.usecase.BookSlot(ctx, bookingRequest("s1"))

		require.NoError(t, err)
		assert.NotEmpty(t, appointment.ID)
		assert.Equal(t, "s1", appointment.SlotID)
		assert.Equal(t, "Ana Souza", appointment.ClientName)
		assert.Equal(t, "+5511999990000", appointment.WhatsApp)
		assert.Equal(t, constvars.AppointmentStatusConfirmed, appointment.Status)
		require.NotNil(t, appointment.Notes)
		assert.Equal(t, "first visit", *appointment.Notes)

		slot, err := f.slotRepo.FindByID(ctx, "s1")
		require.NoError(t, err)
		assert.False(t, slot.IsAvailable)

		require.Len(t, f.dispatcher.messages, 1)
		assert.Equal(t, "5511999990000", f.dispatcher.messages[0].destination)
		assert.Equal(t, "Hello Ana Souza, your appointment on 01/01/2024 at 08:00 is confirmed.", f.dispatcher.messages[0].message)
		f.assertAvailabilityMatchesLedger(t, "s1")
	})

	t.Run("Concurrent Bookings On One Slot Yield Exactly One Winner", func(t *testing.T) {
		f := newBookingFixture(t)
		f.addSlot(t, "s1", "2024-01-01", "08:00:00")

		const callers = 32
		var wg sync.WaitGroup
		results := make([]error, callers)
		start := make(chan struct{})
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				_, results[i] = f.usecase.BookSlot(ctx, bookingRequest("s1"))
			}(i)
		}
		close(start)
		wg.Wait()

		successes := 0
		for _, err := range results {
			if err == nil {
				successes++
				continue
			}
			assert.True(t,
				exceptions.IsKind(err, exceptions.KindSlotUnavailable) || exceptions.IsKind(err, exceptions.KindSlotAlreadyBooked),
				"losers must be rejected as unavailable or already booked, got %v", err,
			)
		}
		assert.Equal(t, 1, successes)

		all, err := f.appointmentRepo.FindAll(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 1)
		f.assertAvailabilityMatchesLedger(t, "s1")
	})

	t.Run("Disjoint Slots Do Not Contend", func(t *testing.T) {
		f := newBookingFixture(t)
		slotIDs := []string{"a", "b", "c", "d"}
		for i, id := range slotIDs {
			f.addSlot(t, id, "2024-01-01", []string{"08:00:00", "08:30:00", "09:00:00", "09:30:00"}[i])
		}

		var wg sync.WaitGroup
		errs := make([]error, len(slotIDs))
		for i, id := range slotIDs {
			wg.Add(1)
			go func(i int, id string) {
				defer wg.Done()
				_, errs[i] = f.usecase.BookSlot(ctx, bookingRequest(id))
			}(i, id)
		}
		wg.Wait()

		for i, err := range errs {
			assert.NoError(t, err, "slot %s", slotIDs[i])
		}
	})

	t.Run("Unknown Slot Leaves Ledger Untouched", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.usecase.BookSlot(ctx, bookingRequest("missing"))

		assert.True(t, exceptions.IsKind(err, exceptions.KindSlotUnavailable))
		all, err := f.appointmentRepo.FindAll(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, all)
		assert.Empty(t, f.dispatcher.messages)
	})

	t.Run("Booked Slot Leaves Ledger Untouched", func(t *testing.T) {
		f := newBookingFixture(t)
		f.addSlot(t, "s1", "2024-01-01", "08:00:00")
		_, err := f.usecase.BookSlot(ctx, bookingRequest("s1"))
		require.NoError(t, err)

		_, err = f.usecase.BookSlot(ctx, bookingRequest("s1"))

		assert.True(t, exceptions.IsKind(err, exceptions.KindSlotUnavailable))
		all, err := f.appointmentRepo.FindAll(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("Confirmed Appointment On Available Slot Is Already Booked", func(t *testing.T) {
		f := newBookingFixture(t)
		f.addSlot(t, "s1", "2024-01-01", "08:00:00")
		require.NoError(t, f.appointmentRepo.Insert(ctx, &models.Appointment{
			ID:     "stale",
			SlotID: "s1",
			Status: constvars.AppointmentStatusConfirmed,
		}))

		_, err := f.usecase.BookSlot(ctx, bookingRequest("s1"))

		assert.True(t, exceptions.IsKind(err, exceptions.KindSlotAlreadyBooked))
		slot, err := f.slotRepo.FindByID(ctx, "s1")
		require.NoError(t, err)
		assert.True(t, slot.IsAvailable, "a rejected booking must not claim the slot")
	})

	t.Run("Insert Failure Releases The Slot", func(t *testing.T) {
		f := newBookingFixture(t)
		f.addSlot(t, "s1", "2024-01-01", "08:00:00")
		insertErr := exceptions.ErrMongoDBInsertDocument(errors.New("write concern timeout"))
		usecase := NewAppointmentUsecase(f.slotRepo, &failingInsertRepository{AppointmentRepository: f.appointmentRepo, err: insertErr}, f.dispatcher, zap.NewNop())

		_, err := usecase.BookSlot(ctx, bookingRequest("s1"))

		assert.ErrorIs(t, err, insertErr)
		slot, err := f.slotRepo.FindByID(ctx, "s1")
		require.NoError(t, err)
		assert.True(t, slot.IsAvailable)
		assert.Empty(t, f.dispatcher.messages)
	})

	t.Run("Dropped Notification Does Not Fail Booking", func(t *testing.T) {
		f := newBookingFixture(t)
		f.dispatcher.reject = true
		f.addSlot(t, "s1", "2024-01-01", "08:00:00")

		appointment, err := f.usecase.BookSlot(ctx, bookingRequest("s1"))

		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusConfirmed, appointment.Status)
	})
}

func TestAppointmentUsecase_CancelAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("Cancel Then Rebook", func(t *testing.T) {
		f := newBookingFixture(t)
		f.addSlot(t, "s1", "2024-01-01", "08:00:00")
		first, err := f.usecase.BookSlot(ctx, bookingRequest("s1"))
		require.NoError(t, err)

		require.NoError(t, f.usecase.CancelAppointment(ctx, first.ID))

		cancelled, err := f.usecase.FindByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, cancelled.Status)
		f.assertAvailabilityMatchesLedger(t, "s1")

		second, err := f.usecase.BookSlot(ctx, bookingRequest("s1"))
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
		f.assertAvailabilityMatchesLedger(t, "s1")
	})

	t.Run("Cancelling Twice Does Not Free A Rebooked Slot", func(t *testing.T) {
		f := newBookingFixture(t)
		f.addSlot(t, "s1", "2024-01-01", "08:00:00")
		first, err := f.usecase.BookSlot(ctx, bookingRequest("s1"))
		require.NoError(t, err)
		require.NoError(t, f.usecase.CancelAppointment(ctx, first.ID))
		_, err = f.usecase.BookSlot(ctx, bookingRequest("s1"))
		require.NoError(t, err)

		err = f.usecase.CancelAppointment(ctx, first.ID)

		require.NoError(t, err)
		slot, err := f.slotRepo.FindByID(ctx, "s1")
		require.NoError(t, err)
		assert.False(t, slot.IsAvailable)
		f.assertAvailabilityMatchesLedger(t, "s1")
	})

	t.Run("Unknown Appointment", func(t *testing.T) {
		f := newBookingFixture(t)

		err := f.usecase.CancelAppointment(ctx, "missing")

		assert.True(t, exceptions.IsKind(err, exceptions.KindNotFound))
	})

	t.Run("Slot Deleted Underneath Still Cancels", func(t *testing.T) {
		f := newBookingFixture(t)
		f.addSlot(t, "s1", "2024-01-01", "08:00:00")
		appointment, err := f.usecase.BookSlot(ctx, bookingRequest("s1"))
		require.NoError(t, err)
		// a held slot cannot be deleted, so it is released by hand first
		require.NoError(t, f.slotRepo.SetAvailability(ctx, "s1", true))
		require.NoError(t, f.slotRepo.Delete(ctx, "s1"))

		err = f.usecase.CancelAppointment(ctx, appointment.ID)

		require.NoError(t, err)
		cancelled, err := f.usecase.FindByID(ctx, appointment.ID)
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, cancelled.Status)
	})
}

func TestAppointmentUsecase_Interleavings(t *testing.T) {
	ctx := context.Background()

	t.Run("Concurrent Cancels Around A Rebook Keep The New Booking", func(t *testing.T) {
		f := newBookingFixture(t)
		f.addSlot(t, "s1", "2024-01-01", "08:00:00")
		first, err := f.usecase.BookSlot(ctx, bookingRequest("s1"))
		require.NoError(t, err)

		cancelGate := newGate()
		gatedRepo := &gatedFindByIDRepository{AppointmentRepository: f.appointmentRepo, gate: cancelGate}
		cancelling := NewAppointmentUsecase(f.slotRepo, gatedRepo, f.dispatcher, zap.NewNop())

		results := make(chan error, 2)
		for i := 0; i < 2; i++ {
			go func() { results <- cancelling.CancelAppointment(ctx, first.ID) }()
		}
		// both cancels have read the appointment as confirmed
		cancelGate.waitArrival(t)
		cancelGate.waitArrival(t)

		cancelGate.release <- struct{}{}
		require.NoError(t, waitResult(t, results))

		second, err := f.usecase.BookSlot(ctx, bookingRequest("s1"))
		require.NoError(t, err)

		cancelGate.release <- struct{}{}
		require.NoError(t, waitResult(t, results))

		slot, err := f.slotRepo.FindByID(ctx, "s1")
		require.NoError(t, err)
		assert.False(t, slot.IsAvailable, "late cancel must not free the rebooked slot")
		active, err := f.appointmentRepo.FindActiveBySlot(ctx, "s1")
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, second.ID, active.ID)
		f.assertAvailabilityMatchesLedger(t, "s1")
	})

	t.Run("Delete During Booking Is Refused", func(t *testing.T) {
		f := newBookingFixture(t)
		f.addSlot(t, "s1", "2024-01-01", "08:00:00")

		insertGate := newGate()
		gatedRepo := &gatedInsertRepository{AppointmentRepository: f.appointmentRepo, gate: insertGate}
		booking := NewAppointmentUsecase(f.slotRepo, gatedRepo, f.dispatcher, zap.NewNop())
		slotUsecase := slots.NewSlotUsecase(f.slotRepo, f.appointmentRepo, zap.NewNop())

		booked := make(chan error, 1)
		go func() {
			_, err := booking.BookSlot(ctx, bookingRequest("s1"))
			booked <- err
		}()
		// the slot is claimed but the ledger has no row yet
		insertGate.waitArrival(t)

		err := slotUsecase.DeleteSlot(ctx, "s1")
		assert.True(t, exceptions.IsKind(err, exceptions.KindConflict))

		insertGate.release <- struct{}{}
		require.NoError(t, waitResult(t, booked))

		slot, err := f.slotRepo.FindByID(ctx, "s1")
		require.NoError(t, err)
		require.NotNil(t, slot, "booked slot must survive the delete")
		f.assertAvailabilityMatchesLedger(t, "s1")
	})

	t.Run("Booking After Delete Is Unavailable", func(t *testing.T) {
		f := newBookingFixture(t)
		f.addSlot(t, "s1", "2024-01-01", "08:00:00")
		slotUsecase := slots.NewSlotUsecase(f.slotRepo, f.appointmentRepo, zap.NewNop())
		require.NoError(t, slotUsecase.DeleteSlot(ctx, "s1"))

		_, err := f.usecase.BookSlot(ctx, bookingRequest("s1"))

		assert.True(t, exceptions.IsKind(err, exceptions.KindSlotUnavailable))
		all, err := f.appointmentRepo.FindAll(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestAppointmentMemoryRepository(t *testing.T) {
	ctx := context.Background()
	newAppointment := func(id, status string) *models.Appointment {
		return &models.Appointment{ID: id, SlotID: "s1", Date: "2024-01-01", Time: "08:00:00", Status: status, CreatedAt: time.Now()}
	}

	t.Run("Second Confirmed Appointment On A Slot Is Rejected", func(t *testing.T) {
		repo := NewAppointmentMemoryRepository()
		require.NoError(t, repo.Insert(ctx, newAppointment("a1", constvars.AppointmentStatusCancelled)))
		require.NoError(t, repo.Insert(ctx, newAppointment("a2", constvars.AppointmentStatusConfirmed)))

		err := repo.Insert(ctx, newAppointment("a3", constvars.AppointmentStatusConfirmed))

		assert.True(t, exceptions.IsKind(err, exceptions.KindSlotAlreadyBooked))
	})

	t.Run("CompareAndSetStatus", func(t *testing.T) {
		repo := NewAppointmentMemoryRepository()
		require.NoError(t, repo.Insert(ctx, newAppointment("a1", constvars.AppointmentStatusConfirmed)))

		won, err := repo.CompareAndSetStatus(ctx, "a1", constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusCancelled)
		require.NoError(t, err)
		assert.True(t, won)

		won, err = repo.CompareAndSetStatus(ctx, "a1", constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusCancelled)
		require.NoError(t, err)
		assert.False(t, won)

		_, err = repo.CompareAndSetStatus(ctx, "missing", constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusCancelled)
		assert.True(t, exceptions.IsKind(err, exceptions.KindNotFound))
	})
}

func TestAppointmentUsecase_FindAll(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)
	f.addSlot(t, "s1", "2024-01-01", "09:00:00")
	f.addSlot(t, "s2", "2024-01-02", "08:00:00")

	first := bookingRequest("s1")
	first.Time = "09:00:00"
	_, err := f.usecase.BookSlot(ctx, first)
	require.NoError(t, err)
	second := bookingRequest("s2")
	second.Date = "2024-01-02"
	_, err = f.usecase.BookSlot(ctx, second)
	require.NoError(t, err)

	t.Run("All Ordered By Time", func(t *testing.T) {
		all, err := f.usecase.FindAll(ctx, "")

		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "08:00:00", all[0].Time)
		assert.Equal(t, "09:00:00", all[1].Time)
	})

	t.Run("Filtered By Date", func(t *testing.T) {
		filtered, err := f.usecase.FindAll(ctx, "2024-01-02")

		require.NoError(t, err)
		require.Len(t, filtered, 1)
		assert.Equal(t, "s2", filtered[0].SlotID)
	})

	t.Run("FindByID Unknown", func(t *testing.T) {
		_, err := f.usecase.FindByID(ctx, "missing")

		assert.True(t, exceptions.IsKind(err, exceptions.KindNotFound))
	})
}
