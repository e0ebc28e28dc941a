package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/jamieabc/stream-monitor/cache"
	"github.com/jamieabc/stream-monitor/configuration"
	"github.com/jamieabc/stream-monitor/db"
	"github.com/jamieabc/stream-monitor/engine"
	"github.com/jamieabc/stream-monitor/fault"
	"github.com/jamieabc/stream-monitor/messengers"
	"github.com/jamieabc/stream-monitor/tasks"
)

var (
	configFile string
)

func init() {
	flag.StringVar(&configFile, "c", "", "config file")
}

func main() {
	os.Exit(run())
}

func run() int {
	err := parseFlag()
	if nil != err {
		return 1
	}

	config, err := configuration.Parse(configFile)
	if nil != err {
		_, _ = fmt.Fprintf(os.Stderr, "parse config file %s with error: %s\n", configFile, err)
		return 1
	}

	fmt.Printf("config: \n%s\n", config.String())

	err = initializeLogger(config)
	if nil != err {
		return 1
	}
	defer logger.Finalise()

	log := logger.New("main")
	log.Info("START consumer...")
	defer log.Info("END consumer.")

	options, closers, err := initializeSinks(config, log)
	if nil != err {
		return 1
	}
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()

	e, err := engine.New(config.EngineConfig(), logger.New("engine"), os.Stdout, options...)
	if nil != err {
		log.Errorf("initialize engine with error: %s", err)
		return 1
	}

	log.Infof("reading file located at %s", config.EngineConfig().SourcePath)

	err = e.Start()
	if nil != err {
		log.Criticalf("start engine with error: %s", err)
		_, _ = fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{}, 1)
	t := tasks.NewTasks(done, cancel)
	t.Go(func() error {
		return e.Run(ctx)
	})

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("receive signal: %v", sig)
	fmt.Println("User stopped the consumer (CTRL+C).")

	for _, err := range t.Done() {
		log.Errorf("engine stopped with error: %s", err)
	}
	<-done

	return 0
}

func parseFlag() error {
	flag.Parse()

	if "" == configFile {
		flag.Usage()
		_, _ = fmt.Fprintf(os.Stderr, "\n%s\n", fault.InvalidEmptyConfigFile)
		return fault.InvalidEmptyConfigFile
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		_, _ = fmt.Fprintf(os.Stderr, "config file: %s, err: %s\n", configFile, fault.InvalidEmptyConfigFile)
		return fault.InvalidEmptyConfigFile
	}

	return nil
}

func initializeLogger(config configuration.Configuration) error {
	logConfig := config.LogConfig()

	err := os.MkdirAll(logConfig.Directory, 0755)
	if nil == err {
		err = logger.Initialise(logConfig)
	}

	if nil != err {
		_, _ = fmt.Fprintf(os.Stderr, "\n%s\n", err)
		return err
	}
	return nil
}

type closer interface {
	Close() error
}

// optional slack notifier and influx reporter
func initializeSinks(config configuration.Configuration, log *logger.L) ([]engine.Option, []closer, error) {
	options := []engine.Option{}
	closers := []closer{}

	slackConfig := config.SlackConfig()
	if "" != slackConfig.Token {
		var m messengers.Messenger = messengers.NewSlack(slackConfig.Token, slackConfig.ChannelID)
		if !m.Valid() {
			log.Errorf("slack config: %s", fault.ErrInvalidMessenger)
			return nil, nil, fault.ErrInvalidMessenger
		}

		if cooldown := config.AlertCooldown(); 0 < cooldown {
			m = messengers.NewThrottled(m, cache.NewCache(cooldown))
		}

		options = append(options, engine.WithNotifier(m))
		log.Infof("forward alerts to slack channel %s", slackConfig.ChannelID)
	}

	influxConfig := config.InfluxDBConfig()
	if "" != influxConfig.Address {
		w, err := db.NewInfluxDBWriter(influxConfig, map[string]string{
			"source": config.EngineConfig().SourcePath,
		})
		if nil != err {
			log.Errorf("influx db config: %s", err)
			return nil, nil, err
		}

		options = append(options, engine.WithReporter(w))
		closers = append(closers, w)
		log.Infof("write reports to influx db %s", influxConfig.Address)
	}

	return options, closers, nil
}
