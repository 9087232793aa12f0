package client

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/rzdrail/rzdrail/pkg/config"
	"github.com/rzdrail/rzdrail/pkg/rzd"
	"github.com/rzdrail/rzdrail/pkg/rzd/query"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Query the national railway timetable",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML config file",
			},
		},
		Subcommands: []*cli.Command{
			{
				Name:  "stations",
				Usage: "look up station codes by part of the name",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "query", Usage: "part of the station name", Required: true},
				},
				Action: func(c *cli.Context) error {
					search, err := query.NewStationSearch(c.String("query"))
					if err != nil {
						return err
					}

					return runSearch[rzd.StationList](c, search)
				},
			},
			{
				Name:  "schedule",
				Usage: "list trains between two stations on a date",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "from", Usage: "departure station code", Required: true},
					&cli.IntFlag{Name: "to", Usage: "arrival station code", Required: true},
					&cli.StringFlag{Name: "date", Usage: "departure date (DD.MM.YYYY)", Required: true},
					&cli.StringFlag{Name: "type", Usage: "train type: long-distance, suburban or all", Value: "all"},
					&cli.BoolFlag{Name: "free-seats-only", Usage: "skip trains that are sold out"},
				},
				Action: func(c *cli.Context) error {
					from, to, err := stationPair(c)
					if err != nil {
						return err
					}

					date, err := rzd.ParseTrainDate(c.String("date"))
					if err != nil {
						return err
					}

					trainType, err := parseTrainType(c.String("type"))
					if err != nil {
						return err
					}

					search, err := query.NewScheduleSearch(from, to, date, trainType, c.Bool("free-seats-only"))
					if err != nil {
						return err
					}

					return runSearch[rzd.RouteList](c, search)
				},
			},
			{
				Name:  "train",
				Usage: "show per-car seat availability for one train",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "from", Usage: "departure station code", Required: true},
					&cli.IntFlag{Name: "to", Usage: "arrival station code", Required: true},
					&cli.StringFlag{Name: "date", Usage: "departure date (DD.MM.YYYY)", Required: true},
					&cli.StringFlag{Name: "time", Usage: "departure time (HH:MM)", Required: true},
					&cli.StringFlag{Name: "number", Usage: "train number", Required: true},
				},
				Action: func(c *cli.Context) error {
					from, to, err := stationPair(c)
					if err != nil {
						return err
					}

					date, err := rzd.ParseTrainDate(c.String("date"))
					if err != nil {
						return err
					}

					departure, err := rzd.ParseTrainTime(c.String("time"))
					if err != nil {
						return err
					}

					search, err := query.NewTrainSearch(from, to, date, departure, c.String("number"))
					if err != nil {
						return err
					}

					return runSearch[rzd.TrainList](c, search)
				},
			},
			{
				Name:  "route",
				Usage: "list the stops a train makes along its route",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "number", Usage: "train number", Required: true},
					&cli.StringFlag{Name: "date", Usage: "departure date (DD.MM.YYYY)", Required: true},
				},
				Action: func(c *cli.Context) error {
					date, err := rzd.ParseTrainDate(c.String("date"))
					if err != nil {
						return err
					}

					search, err := query.NewTripStopsSearch(c.String("number"), date)
					if err != nil {
						return err
					}

					return runSearch[rzd.TripStations](c, search)
				},
			},
		},
	}
}

func runSearch[T fmt.Stringer](c *cli.Context, q Query[T]) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	rzdClient := fromConfig(cfg)

	result, err := Get(c.Context, rzdClient, q)
	if err != nil {
		return err
	}

	if result == nil {
		fmt.Println("nothing found")
		return nil
	}

	fmt.Println((*result).String())

	return nil
}

func fromConfig(cfg config.Config) *Client {
	transport := NewHTTPTransport(cfg.HTTPTimeout(), uint64(cfg.HTTP.MaxRetries), cfg.HTTP.UserAgent)

	rzdClient := New(transport)
	if cfg.PollInterval() > 0 {
		rzdClient.PollInterval = cfg.PollInterval()
	}
	if cfg.Poll.Attempts > 0 {
		rzdClient.PollAttempts = uint64(cfg.Poll.Attempts)
	}

	return rzdClient
}

func stationPair(c *cli.Context) (rzd.StationCode, rzd.StationCode, error) {
	from, err := rzd.NewStationCode(c.Int("from"))
	if err != nil {
		return 0, 0, err
	}

	to, err := rzd.NewStationCode(c.Int("to"))
	if err != nil {
		return 0, 0, err
	}

	return from, to, nil
}

func parseTrainType(value string) (rzd.TrainType, error) {
	switch value {
	case "long-distance", "long":
		return rzd.TrainTypeLongDistance, nil
	case "suburban":
		return rzd.TrainTypeSuburban, nil
	case "all", "":
		return rzd.TrainTypeAll, nil
	default:
		return 0, &rzd.ValidationError{Field: "train type", Reason: fmt.Sprintf("unknown type %q", value)}
	}
}
