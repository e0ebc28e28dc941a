package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/jamieabc/stream-monitor/clock"
	"github.com/jamieabc/stream-monitor/configuration"
	"github.com/jamieabc/stream-monitor/fault"
	"github.com/jamieabc/stream-monitor/producer"
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
	flag.Parse()
	if "" == configFile {
		flag.Usage()
		_, _ = fmt.Fprintf(os.Stderr, "\n%s\n", fault.InvalidEmptyConfigFile)
		return 1
	}

	config, err := configuration.Parse(configFile)
	if nil != err {
		_, _ = fmt.Fprintf(os.Stderr, "parse config file %s with error: %s\n", configFile, err)
		return 1
	}

	logConfig := config.LogConfig()
	logConfig.File = "producer.log"
	if err := os.MkdirAll(logConfig.Directory, 0755); nil != err {
		_, _ = fmt.Fprintf(os.Stderr, "\n%s\n", err)
		return 1
	}
	if err := logger.Initialise(logConfig); nil != err {
		_, _ = fmt.Fprintf(os.Stderr, "\n%s\n", err)
		return 1
	}
	defer logger.Finalise()

	log := logger.New("main")
	log.Info("START producer...")
	defer log.Info("END producer.")

	producerConfig := config.ProducerConfig()
	seed := producerConfig.Seed
	if 0 == seed {
		seed = time.Now().UnixNano()
	}

	sourcePath := config.EngineConfig().SourcePath
	if err := os.MkdirAll(filepath.Dir(sourcePath), 0755); nil != err {
		log.Errorf("create directory of %s with error: %s", sourcePath, err)
		return 1
	}

	p, err := producer.New(
		sourcePath,
		time.Duration(producerConfig.IntervalSecond)*time.Second,
		producer.NewSeededGenerator(seed),
		logger.New("producer"),
		clock.NewClock(),
	)
	if nil != err {
		log.Errorf("initialize producer with error: %s", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{}, 1)
	t := tasks.NewTasks(done, cancel)
	failed := make(chan struct{}, 1)
	t.Go(func() error {
		err := p.Run(ctx)
		if nil != err {
			failed <- struct{}{}
		}
		return err
	})

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	log.Info("Press CTRL+C to stop.")

	select {
	case sig := <-ch:
		log.Infof("receive signal: %v", sig)
	case <-failed:
	}

	status := 0
	for _, err := range t.Done() {
		log.Errorf("producer stopped with error: %s", err)
		status = 1
	}
	<-done

	return status
}
