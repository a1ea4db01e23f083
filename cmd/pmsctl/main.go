package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelService/internal/config"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/pmsclient"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

const usage = `pmsctl [-config config.toml] <command> [args]

commands:
  reservation <id>
  reserve <habitacion_id> <cliente_id> <fecha_entrada> <fecha_salida> [precio_noche]
  checkin <id>
  change-room <id> <habitacion_id>
  checkout <id>
  cancel <id>
  folio <id>
`

var errUsage = errors.New("pmsctl: invalid arguments")

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Client.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid client config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithWriter(os.Stderr, cfg.Logs.Level)
	api := pmsclient.New(cfg.Client.BaseURL, time.Duration(cfg.Client.Timeout)*time.Second, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, api, flag.Args(), os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "%v\n\n%s", err, usage)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run выполняет одну команду и печатает результат в out как JSON
func run(ctx context.Context, api *pmsclient.Client, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: command is required", errUsage)
	}

	var (
		result interface{}
		err    error
	)

	switch cmd, rest := args[0], args[1:]; cmd {
	case "reservation", "checkin", "checkout", "cancel", "folio":
		if len(rest) != 1 {
			return fmt.Errorf("%w: %s expects <id>", errUsage, cmd)
		}
		id, perr := parseID(rest[0])
		if perr != nil {
			return perr
		}
		switch cmd {
		case "reservation":
			result, err = api.GetReservation(ctx, id)
		case "checkin":
			result, err = api.CheckIn(ctx, id, nil)
		case "checkout":
			result, err = api.Checkout(ctx, id)
		case "cancel":
			result, err = api.Cancel(ctx, id)
		case "folio":
			result, err = api.GetFolio(ctx, id)
		}

	case "change-room":
		if len(rest) != 2 {
			return fmt.Errorf("%w: change-room expects <id> <habitacion_id>", errUsage)
		}
		id, perr := parseID(rest[0])
		if perr != nil {
			return perr
		}
		roomID, perr := parseID(rest[1])
		if perr != nil {
			return perr
		}
		result, err = api.ChangeRoom(ctx, id, roomID)

	case "reserve":
		req, perr := parseReserve(rest)
		if perr != nil {
			return perr
		}
		result, err = api.CreateReservation(ctx, req)

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}

	if err != nil {
		var conflict *pmsclient.ConflictError
		if errors.As(err, &conflict) {
			return fmt.Errorf("habitacion ocupada el %s por la reserva %d", conflict.Date, conflict.ReservationID)
		}
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", errUsage, s)
	}
	return id, nil
}

func parseReserve(args []string) (*pmsclient.CreateReservationRequest, error) {
	if len(args) != 4 && len(args) != 5 {
		return nil, fmt.Errorf("%w: reserve expects <habitacion_id> <cliente_id> <fecha_entrada> <fecha_salida> [precio_noche]", errUsage)
	}

	roomID, err := parseID(args[0])
	if err != nil {
		return nil, err
	}
	clientID, err := parseID(args[1])
	if err != nil {
		return nil, err
	}
	entry, err := types.ParseDate(args[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	exit, err := types.ParseDate(args[3])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}

	req := &pmsclient.CreateReservationRequest{
		RoomID:    roomID,
		ClientID:  &clientID,
		EntryDate: entry,
		ExitDate:  exit,
	}

	if len(args) == 5 {
		rate, err := decimal.NewFromString(args[4])
		if err != nil || !types.FitsMoneyScale(rate) {
			return nil, fmt.Errorf("%w: invalid precio_noche %q", errUsage, args[4])
		}
		money := types.NewMoney(rate)
		req.NightlyRate = &money
	}

	return req, nil
}
