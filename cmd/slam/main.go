package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/itohio/slam/pkg/agent"
	"github.com/itohio/slam/pkg/config"
	"github.com/itohio/slam/pkg/geometry"
	"github.com/itohio/slam/pkg/logging"
	"github.com/itohio/slam/pkg/planner/explore"
	"github.com/itohio/slam/pkg/planner/rrt"
	"github.com/itohio/slam/pkg/sensor"
	"github.com/itohio/slam/pkg/viz"
	"github.com/itohio/slam/pkg/viz/tui"
	"github.com/itohio/slam/pkg/wire"
	"github.com/itohio/slam/pkg/world"
	"github.com/itohio/slam/pkg/worldsim"
	"golang.org/x/sync/errgroup"
)

var log = logging.Named("main")

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (defaults built in if omitted)")
	lego := flag.Bool("lego", false, "Drive a physical Lego robot over the wire protocol instead of simulating")
	headless := flag.Bool("headless", false, "Run without the terminal visualizer")
	save := flag.Bool("save", false, "Persist occupancy snapshots to disk")
	flag.Parse()

	if err := run(*configPath, *lego, *headless, *save); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, lego, headless, save bool) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if save {
		cfg.Save = true
	}

	belief := world.NewObservedWorld()

	var sink viz.Sink
	var display *tui.Display
	var queue *viz.Queue
	if headless {
		sink = viz.Null{}
	} else {
		d, err := tui.New()
		if err != nil {
			return err
		}
		display = d
		defer display.Close()

		queue = viz.NewQueue(256)
		sink = queue
	}

	hopPlanner := rrt.New(belief, sink, rrt.Config{
		MaxStep:         cfg.MaxStep,
		MinStep:         cfg.MinStep,
		TiltTowardsGoal: cfg.TiltTowardsGoal,
		Tolerance:       cfg.DistanceTolerance,
		RobotSize:       cfg.RobotSize,
	})

	explorePlanner := explore.New(belief, hopPlanner, sink, explore.Config{
		RobotSize:         cfg.RobotSize,
		DistanceTolerance: cfg.DistanceTolerance,
		AngleTolerance:    cfg.AngleTolerance,
		BlurSigma:         cfg.BlurSigma,
	})

	firstInterrupt, stopFirst := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stopFirst()

	driver, actuator, start, err := buildRobot(firstInterrupt, cfg, lego)
	if err != nil {
		return err
	}

	a := agent.New(start, belief, driver, explorePlanner, actuator, sink, agent.Config{
		ViewAngle:         cfg.ViewAngle,
		ScanningPrecision: cfg.ScanningPrecision,
	})

	// Phase 1: the agent explores while the display, if any, drains the
	// visualization queue. A first interrupt (or exploration finishing
	// on its own) ends this phase.
	group, gctx := errgroup.WithContext(firstInterrupt)

	group.Go(func() error {
		err := a.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if !headless {
		group.Go(func() error {
			err := display.Run(gctx, queue)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}

	err = group.Wait()
	stopFirst()

	// Phase 2: the agent has stopped; keep redrawing the accumulated map
	// until a second interrupt tells the display to exit.
	if !headless && err == nil {
		secondInterrupt, stopSecond := signal.NotifyContext(context.Background(), os.Interrupt)
		log.Info().Msg("waiting for a second interrupt to exit")
		if rerr := display.RedrawLoop(secondInterrupt); rerr != nil && !errors.Is(rerr, context.Canceled) {
			err = rerr
		}
		stopSecond()
	}

	if cfg.Save {
		if pred, ok := belief.PredictWorld(cfg.BlurSigma); ok {
			persister := world.NewPersister(cfg.SaveFolder)
			if path, perr := persister.Save(pred); perr != nil {
				log.Error().Err(perr).Msg("failed to persist final occupancy snapshot")
			} else {
				log.Info().Str("path", path).Msg("persisted final occupancy snapshot")
			}
		}
	}

	return err
}

// buildRobot wires the sensor driver, actuator, and starting pose for
// either a simulated or a physical Lego robot.
func buildRobot(ctx context.Context, cfg config.Config, lego bool) (sensor.Driver, agent.Actuator, geometry.Pose, error) {
	if lego {
		conn, err := wire.Dial(ctx, fmt.Sprintf("%s:%d", cfg.Host, cfg.Port), time.Second)
		if err != nil {
			return nil, nil, geometry.Pose{}, err
		}
		return sensor.NewLego(conn), agent.LegoActuator{Conn: conn}, geometry.NewPose(0, 0, 0), nil
	}

	scenario := worldsim.Predefined(cfg.WorldNumber)
	driver := sensor.NewSimulated(scenario.World, cfg.LimitedView, cfg.SafetyDistance)
	return driver, agent.SimulatedActuator{}, scenario.Start, nil
}
