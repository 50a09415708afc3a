package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"train-booking/internal/data/entity"
	"train-booking/internal/data/repository"
	"train-booking/internal/dto/request"
	"train-booking/internal/dto/response"
	"train-booking/internal/wizard"
	"train-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxTrainResults = 3

type WizardService interface {
	GetSearch(ctx context.Context, key string) (*response.SearchPageResponse, error)
	SubmitSearch(ctx context.Context, key string, req *request.SearchRequest) (*response.StepResponse, error)
	GetPassengerForms(ctx context.Context, key string) (*response.PassengerPageResponse, error)
	SubmitPassengers(ctx context.Context, key string, req *request.PassengersRequest) (*response.StepResponse, error)
	GetTrainResults(ctx context.Context, key string) (*response.TrainResultsResponse, error)
	GetPayment(ctx context.Context, key, trainID, seatClass string) (*response.PaymentPageResponse, error)
	SubmitPayment(ctx context.Context, key, trainID, seatClass string, req *request.PaymentRequest) (*response.StepResponse, error)
	GetSeatMap(ctx context.Context, key, trainID string) (*response.SeatMapResponse, error)
	SubmitSeats(ctx context.Context, key string, userID uuid.UUID, trainID string, req *request.SeatSelectionRequest) (*response.StepResponse, error)
}

type wizardService struct {
	repo     *repository.Repository
	booking  BookingService
	log      *zap.Logger
	now      func() time.Time
	occupied func() bool
}

func NewWizardService(repo *repository.Repository, booking BookingService, log *zap.Logger) WizardService {
	return &wizardService{
		repo:     repo,
		booking:  booking,
		log:      log.With(zap.String("service", "wizard")),
		now:      time.Now,
		occupied: randomOccupancy,
	}
}

// ==================== SEARCH ====================

func (s *wizardService) GetSearch(ctx context.Context, key string) (*response.SearchPageResponse, error) {
	session, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	return &response.SearchPageResponse{State: session.State, Search: session.Search}, nil
}

func (s *wizardService) SubmitSearch(ctx context.Context, key string, req *request.SearchRequest) (*response.StepResponse, error) {
	req.FromStation = strings.TrimSpace(req.FromStation)
	req.ToStation = strings.TrimSpace(req.ToStation)
	req.BookingType = strings.ToLower(strings.TrimSpace(req.BookingType))

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Search validation failed", zap.Any("errors", errs))
		return nil, newValidationError("Validation failed", errs)
	}

	travelDate, _ := time.ParseInLocation(wizard.DateLayout, req.TravelDate, time.Local)
	fields := map[string]string{}
	if strings.EqualFold(req.FromStation, req.ToStation) {
		fields["to_station"] = "Must differ from from_station"
	}
	today := s.now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	if travelDate.Before(today) {
		fields["travel_date"] = "Travel date cannot be in the past"
	}
	if len(fields) > 0 {
		return nil, newValidationError("Validation failed", fields)
	}

	bookingType := entity.BookingType(req.BookingType)
	if bookingType == "" {
		bookingType = entity.BookingTypeRegular
	}

	session, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}

	err = session.Apply(wizard.SubmitSearch{Data: wizard.SearchData{
		FromStation: req.FromStation,
		ToStation:   req.ToStation,
		TravelDate:  req.TravelDate,
		Passengers:  req.Passengers,
		BookingType: bookingType,
	}})
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx, key, session); err != nil {
		return nil, err
	}

	s.log.Info("Search submitted",
		zap.String("from", req.FromStation),
		zap.String("to", req.ToStation),
		zap.Int("passengers", req.Passengers))

	return step(session), nil
}

// ==================== PASSENGERS ====================

func (s *wizardService) GetPassengerForms(ctx context.Context, key string) (*response.PassengerPageResponse, error) {
	session, err := s.loadFor(ctx, key, wizard.StatePassengerEntry)
	if err != nil {
		return nil, err
	}

	count := session.PassengerCount()
	forms := make([]response.PassengerFormSlot, count)
	for i := range forms {
		forms[i] = response.PassengerFormSlot{Index: i, Prefix: passengerPrefix(i)}
		// isi ulang data lama kalau user kembali ke langkah ini
		if i < len(session.Passengers) {
			forms[i].Values = session.Passengers[i]
		}
	}

	return &response.PassengerPageResponse{
		State:          session.State,
		Search:         *session.Search,
		PassengerCount: count,
		IsTatkal:       session.Search.BookingType == entity.BookingTypeTatkal,
		Forms:          forms,
		Passengers:     session.Passengers,
	}, nil
}

func (s *wizardService) SubmitPassengers(ctx context.Context, key string, req *request.PassengersRequest) (*response.StepResponse, error) {
	session, err := s.loadFor(ctx, key, wizard.StatePassengerEntry)
	if err != nil {
		return nil, err
	}

	count := session.PassengerCount()
	fields := map[string]string{}
	if len(req.Passengers) != count {
		fields["passengers"] = fmt.Sprintf("Exactly %d passengers required, got %d", count, len(req.Passengers))
	}

	passengers := make([]wizard.PassengerData, 0, len(req.Passengers))
	for i := range req.Passengers {
		form := &req.Passengers[i]
		form.Name = strings.TrimSpace(form.Name)
		form.IDProof = strings.TrimSpace(form.IDProof)

		for field, msg := range utils.ValidateStruct(form) {
			fields[passengerPrefix(i)+"."+field] = msg
		}
		passengers = append(passengers, wizard.PassengerData{
			Name:    form.Name,
			Age:     form.Age,
			Gender:  entity.Gender(form.Gender),
			IDProof: form.IDProof,
		})
	}

	if len(fields) > 0 {
		s.log.Warn("Passenger validation failed", zap.Any("errors", fields))
		return nil, newValidationError("Please fill all passenger details correctly.", fields)
	}

	if err := session.Apply(wizard.SubmitPassengers{Data: passengers}); err != nil {
		return nil, err
	}

	if err := s.save(ctx, key, session); err != nil {
		return nil, err
	}

	return step(session), nil
}

// ==================== TRAIN RESULTS ====================

func (s *wizardService) GetTrainResults(ctx context.Context, key string) (*response.TrainResultsResponse, error) {
	session, err := s.loadFor(ctx, key, wizard.StateFareSelection)
	if err != nil {
		return nil, err
	}

	search := session.Search
	count := session.PassengerCount()

	routes, err := s.repo.Route.FindByStations(ctx, search.FromStation, search.ToStation, maxTrainResults)
	if err != nil {
		return nil, fmt.Errorf("get train results: %w", err)
	}

	results := make([]response.TrainResult, 0, len(routes))
	for _, route := range routes {
		if route.Train == nil {
			continue
		}

		classes := make([]response.ClassFare, 0, len(entity.SeatClasses))
		for _, class := range entity.SeatClasses {
			// kelas yang tidak ada di kereta ini tidak ditawarkan
			if route.Train.SeatsFor(class) == 0 {
				continue
			}
			perPassenger, total := CalculateFare(route, class, count)
			classes = append(classes, response.ClassFare{
				SeatClass:         class,
				Label:             class.Label(),
				PricePerPassenger: perPassenger,
				TotalPrice:        total,
				AvailableSeats:    route.Train.SeatsFor(class),
				PaymentURL:        wizard.PaymentPath(route.Train.ID, string(class)),
			})
		}

		results = append(results, response.TrainResult{
			Train:   response.TrainToSummary(route.Train),
			Route:   response.RouteToSummary(route),
			Classes: classes,
		})
	}

	return &response.TrainResultsResponse{
		State:          session.State,
		Search:         *search,
		PassengerCount: count,
		Trains:         results,
	}, nil
}

// ==================== PAYMENT ====================

func (s *wizardService) GetPayment(ctx context.Context, key, trainID, seatClass string) (*response.PaymentPageResponse, error) {
	session, err := s.loadFor(ctx, key, wizard.StatePaymentEntry)
	if err != nil {
		return nil, err
	}

	quote, err := s.quote(ctx, session, trainID, seatClass)
	if err != nil {
		return nil, err
	}

	return &response.PaymentPageResponse{
		State:          wizard.StatePaymentEntry,
		Train:          response.TrainToSummary(quote.train),
		Route:          response.RouteToSummary(quote.route),
		SeatClass:      quote.class,
		BasePrice:      quote.perPassenger,
		TotalPrice:     quote.total,
		PassengerCount: session.PassengerCount(),
		Search:         *session.Search,
	}, nil
}

func (s *wizardService) SubmitPayment(ctx context.Context, key, trainID, seatClass string, req *request.PaymentRequest) (*response.StepResponse, error) {
	session, err := s.loadFor(ctx, key, wizard.StatePaymentEntry)
	if err != nil {
		return nil, err
	}

	req.PaymentMethod = strings.ToLower(strings.TrimSpace(req.PaymentMethod))
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Payment validation failed", zap.Any("errors", errs))
		return nil, newValidationError("Validation failed", errs)
	}

	quote, err := s.quote(ctx, session, trainID, seatClass)
	if err != nil {
		return nil, err
	}

	err = session.Apply(wizard.SubmitPayment{Data: wizard.PaymentData{
		TrainID:       quote.train.ID,
		SeatClass:     quote.class,
		TotalPrice:    quote.total,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
	}})
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx, key, session); err != nil {
		return nil, err
	}

	resp := step(session)
	resp.Redirect = wizard.SeatSelectionPath(quote.train.ID)
	return resp, nil
}

// ==================== SEAT SELECTION ====================

func (s *wizardService) GetSeatMap(ctx context.Context, key, trainID string) (*response.SeatMapResponse, error) {
	session, err := s.loadFor(ctx, key, wizard.StateSeatSelection)
	if err != nil {
		return nil, err
	}

	train, err := s.findTrain(ctx, trainID)
	if err != nil {
		return nil, err
	}
	if err := matchPaymentTrain(session, train); err != nil {
		return nil, err
	}

	class := session.Payment.SeatClass
	return &response.SeatMapResponse{
		State:         session.State,
		Train:         response.TrainToSummary(train),
		SeatClass:     class,
		Coach:         class.Coach(),
		RequiredSeats: len(session.Passengers),
		Rows:          BuildSeatMap(s.occupied),
	}, nil
}

func (s *wizardService) SubmitSeats(ctx context.Context, key string, userID uuid.UUID, trainID string, req *request.SeatSelectionRequest) (*response.StepResponse, error) {
	session, err := s.loadFor(ctx, key, wizard.StateSeatSelection)
	if err != nil {
		return nil, err
	}

	train, err := s.findTrain(ctx, trainID)
	if err != nil {
		return nil, err
	}
	if err := matchPaymentTrain(session, train); err != nil {
		return nil, err
	}

	seats, err := normalizeSeatSelection(req.SelectedSeats, len(session.Passengers))
	if err != nil {
		return nil, err
	}

	booking, err := s.booking.CreateBooking(ctx, userID, &BookingDraft{
		Search:     *session.Search,
		Passengers: session.Passengers,
		Payment:    *session.Payment,
		Seats:      seats,
	})
	if err != nil {
		return nil, err
	}

	if err := session.Apply(wizard.Commit{BookingID: booking.BookingID}); err != nil {
		return nil, err
	}

	// booking sudah tersimpan, gagal simpan wizard cukup dicatat
	if err := s.repo.Wizard.Save(ctx, key, session); err != nil {
		s.log.Error("Failed to clear wizard after commit",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID))
	}

	return &response.StepResponse{
		State:     session.State,
		Redirect:  wizard.ETicketPath(booking.BookingID),
		BookingID: booking.BookingID,
	}, nil
}

// ==================== HELPER METHODS ====================

func passengerPrefix(i int) string {
	return fmt.Sprintf("passenger_%d", i)
}

func matchPaymentTrain(session *wizard.Session, train *entity.Train) error {
	if train.ID != session.Payment.TrainID {
		return newValidationError("Selected train does not match the payment", map[string]string{
			"train_id": "Must match the train chosen at payment",
		})
	}
	return nil
}

type fareQuote struct {
	train        *entity.Train
	route        *entity.Route
	class        entity.SeatClass
	perPassenger float64
	total        float64
}

func (s *wizardService) quote(ctx context.Context, session *wizard.Session, trainID, seatClass string) (*fareQuote, error) {
	train, err := s.findTrain(ctx, trainID)
	if err != nil {
		return nil, err
	}

	route, err := s.repo.Route.FindForTrain(ctx, train.ID, session.Search.FromStation, session.Search.ToStation)
	if err != nil {
		return nil, fmt.Errorf("get route: %w", err)
	}
	if route == nil {
		return nil, notFound("route")
	}

	class := normalizeSeatClass(seatClass)
	if train.SeatsFor(class) == 0 {
		return nil, newValidationError("Seat class not available on this train", map[string]string{
			"seat_class": fmt.Sprintf("%s has no %s coach", train.Name, class.Label()),
		})
	}
	perPassenger, total := CalculateFare(route, class, len(session.Passengers))

	return &fareQuote{
		train:        train,
		route:        route,
		class:        class,
		perPassenger: perPassenger,
		total:        total,
	}, nil
}

func (s *wizardService) findTrain(ctx context.Context, trainID string) (*entity.Train, error) {
	id, err := uuid.Parse(strings.TrimSpace(trainID))
	if err != nil {
		return nil, notFound("train")
	}

	train, err := s.repo.Train.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get train: %w", err)
	}
	if train == nil {
		return nil, notFound("train")
	}
	return train, nil
}

func (s *wizardService) load(ctx context.Context, key string) (*wizard.Session, error) {
	if key == "" {
		return nil, errors.New("missing wizard session key")
	}
	session, err := s.repo.Wizard.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load wizard: %w", err)
	}
	return session, nil
}

// loadFor load + pastikan payload untuk state target tersedia
func (s *wizardService) loadFor(ctx context.Context, key string, target wizard.State) (*wizard.Session, error) {
	session, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := session.Require(target); err != nil {
		s.log.Warn("Wizard step out of order",
			zap.String("current", string(session.State)),
			zap.String("target", string(target)))
		return nil, err
	}
	return session, nil
}

func (s *wizardService) save(ctx context.Context, key string, session *wizard.Session) error {
	if err := s.repo.Wizard.Save(ctx, key, session); err != nil {
		return fmt.Errorf("save wizard: %w", err)
	}
	return nil
}

func step(session *wizard.Session) *response.StepResponse {
	return &response.StepResponse{
		State:    session.State,
		Redirect: session.State.Path(),
	}
}
