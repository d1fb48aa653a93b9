package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"tatya/config"
	"tatya/gateway"
	"tatya/models"
	"tatya/services/booking"
	"tatya/services/location"
	"tatya/services/onboarding"
	"tatya/services/otp"
	"tatya/services/payment"
	"tatya/store"
	"tatya/utils"

	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Redis persists progress across runs; without it the client still
	// works for a single run on the in-memory store.
	var backing store.Store
	if addr := config.AppConfig.RedisAddr; addr != "" {
		redisStore, err := store.NewRedisStore("session")
		if err != nil {
			logger.Sugar().Warnf("main: %v; falling back to in-memory store", err)
			backing = store.NewMemoryStore()
		} else {
			backing = redisStore
		}
	} else {
		backing = store.NewMemoryStore()
	}

	session := store.NewSession(backing)
	api := gateway.NewClient(config.AppConfig.APIBaseURL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &app{
		api:     api,
		session: session,
		reader:  bufio.NewReader(os.Stdin),
		logger:  logger,
	}
	if err := app.run(ctx); err != nil && ctx.Err() == nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	logger.Sugar().Info("main: goodbye")
}

type app struct {
	api     *gateway.Client
	session *store.Session
	reader  *bufio.Reader
	logger  *zap.Logger
}

func (a *app) run(ctx context.Context) error {
	if err := a.api.Health(ctx); err != nil {
		fmt.Println("Backend is unreachable:", err)
	}
	for {
		fmt.Println("\n1) Login  2) Book a drone  3) My bookings  4) Vendor onboarding  5) Quit")
		switch a.prompt("> ") {
		case "1":
			a.login(ctx)
		case "2":
			a.book(ctx)
		case "3":
			a.listBookings(ctx)
		case "4":
			a.onboard(ctx)
		case "5", "q":
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// login runs the OTP machine until verified or abandoned.
func (a *app) login(ctx context.Context) {
	machine := otp.NewMachine(a.api, a.session)
	phone := a.prompt("Phone number (10 digits): ")
	if err := machine.RequestCode(ctx, phone); err != nil {
		fmt.Println(err)
		return
	}
	for machine.State() != otp.StateVerified {
		code := a.prompt("Code (4 digits, empty to resend, c to change number): ")
		switch code {
		case "":
			if err := machine.Resend(ctx); err != nil {
				fmt.Println(err)
			}
		case "c":
			machine.ChangeNumber()
			return
		default:
			if err := machine.Paste(ctx, code); err != nil {
				fmt.Println(machine.Message())
			}
		}
		if ctx.Err() != nil {
			return
		}
	}
	fmt.Println("Verified.")
}

// book walks the funnel: location, drone, date, quantity, confirm,
// checkout, pay.
func (a *app) book(ctx context.Context) {
	funnel := booking.NewFunnel(a.api, a.session)

	a.pickLocation(ctx, funnel)

	drones, err := funnel.AvailableDrones(ctx)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, d := range drones {
		fmt.Printf("  [%d] %s %s — ₹%.0f/acre, base %s\n",
			d.DroneID, d.Brand, d.ModelName, d.PricePerAcre, d.BaseLocation)
	}
	droneID, err := strconv.ParseInt(a.prompt("Drone id: "), 10, 64)
	if err != nil {
		fmt.Println("Not a drone id.")
		return
	}
	if _, err := funnel.SelectDrone(ctx, droneID); err != nil {
		fmt.Println(err)
		return
	}

	dates, err := funnel.LoadAvailableDates(ctx)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Available dates:", strings.Join(dates, ", "))
	date := a.prompt("Service date: ")

	unit := models.Unit(a.prompt("Unit (Acre/Hour/Day): "))
	quantity, err := strconv.Atoi(a.prompt("Quantity: "))
	if err != nil {
		fmt.Println("Not a quantity.")
		return
	}
	farmArea, _ := strconv.ParseFloat(a.prompt("Farm area in acres (optional): "), 64)

	if err := funnel.SetSchedule(ctx, date, quantity, unit, farmArea); err != nil {
		fmt.Println(err)
		return
	}
	created, err := funnel.ConfirmBooking(ctx)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Booking #%d created.\n", created.BookingID)

	summary, err := funnel.EnterCheckout(ctx)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Item total ₹%.2f + GST ₹%.2f (delivery and travel waived) = ₹%.2f\n",
		summary.ItemTotal, summary.GSTAmount, summary.TotalPayable)

	if a.prompt("Pay now? (y/n): ") != "y" {
		return
	}
	intent, err := funnel.Pay(ctx, payment.NewListener())
	if err != nil {
		fmt.Println(err)
		return
	}
	if funnel.Stage() == booking.StagePaid {
		fmt.Printf("Payment %s verified. See you in the field.\n", intent.PaymentID)
	} else {
		fmt.Println("Checkout closed without payment; the booking is held.")
	}
}

func (a *app) pickLocation(ctx context.Context, funnel *booking.Funnel) {
	resolver := location.NewResolver(nil)
	center, fromDevice := resolver.InitialPosition(ctx)
	if !fromDevice {
		fmt.Printf("Starting at default center (%.4f, %.4f).\n", center.Lat, center.Lng)
	}

	geocoder := location.NewGeocoder()
	coords := center
	address := ""
	if query := a.prompt("Search for your farm (empty to keep center): "); query != "" {
		results, err := geocoder.Search(ctx, query)
		if err != nil {
			fmt.Println(err)
		}
		for i, r := range results {
			fmt.Printf("  [%d] %s\n", i+1, r.DisplayName)
		}
		if pick, err := strconv.Atoi(a.prompt("Pick: ")); err == nil && pick >= 1 && pick <= len(results) {
			if picked, err := location.Coordinates(results[pick-1]); err == nil {
				coords = picked
				address = results[pick-1].DisplayName
			}
		}
	}
	if address == "" {
		if name, err := geocoder.Reverse(ctx, coords); err == nil {
			address = name
		}
	}
	funnel.SetLocation(ctx, location.Confirm(coords, address))
}

func (a *app) listBookings(ctx context.Context) {
	customerID, ok := a.session.CustomerID(ctx)
	if !ok {
		fmt.Println("Login first.")
		return
	}
	bookings, err := a.api.BookingsByCustomer(ctx, customerID)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, b := range bookings {
		fmt.Printf("  #%d %s %s ₹%.2f\n", b.BookingID, b.ServiceDate, b.Status, b.TotalCost)
	}
}

// onboard runs the six-step vendor wizard from the terminal, coarsely:
// each step prompts its required fields and saves.
func (a *app) onboard(ctx context.Context) {
	wizard := onboarding.NewWizard(a.api, a.session)

	if _, ok := a.session.VendorID(ctx); !ok {
		reg := models.VendorRegistration{
			FullName:    a.prompt("Full name: "),
			PhoneNumber: a.prompt("Phone number: "),
			Email:       a.prompt("Email: "),
			VendorType:  a.prompt("Vendor type (individual/company): "),
		}
		vendor, err := wizard.SignUp(ctx, reg)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("Registered as vendor #%d.\n", vendor.VendorID)
	}

	year, _ := strconv.Atoi(a.prompt("Year of make: "))
	drone, err := wizard.SaveEquipment(ctx, models.EquipmentStep{
		EquipmentType: a.prompt("Equipment type: "),
		Brand:         a.prompt("Brand: "),
		ModelName:     a.prompt("Model: "),
		YearOfMake:    year,
		SerialNo:      a.prompt("Serial no: "),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Drone #%d registered; continue onboarding from any device.\n", drone.DroneID)
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	line, err := a.reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}
