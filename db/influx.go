package db

import (
	dbClient "github.com/influxdata/influxdb1-client/v2"
	"github.com/jamieabc/stream-monitor/configuration"
	"github.com/jamieabc/stream-monitor/engine"
)

const (
	measurement = "rolling_average"
)

// Client - subset of influx client used for writing points
type Client interface {
	Write(dbClient.BatchPoints) error
	Close() error
}

// Influx - influx db writer
type Influx struct {
	Client   Client
	Database string
	Tags     map[string]string
}

//Close - close influx db connection
func (i *Influx) Close() error {
	return i.Client.Close()
}

//Report - write rolling average report as one point
func (i *Influx) Report(r engine.Report) error {
	bp, err := dbClient.NewBatchPoints(dbClient.BatchPointsConfig{
		Database: i.Database,
	})
	if nil != err {
		return err
	}

	fields := map[string]interface{}{
		"count":   int64(r.Count),
		"size":    r.Size,
		"average": r.Average,
	}

	pt, err := dbClient.NewPoint(measurement, i.Tags, fields, r.Timestamp)
	if nil != err {
		return err
	}

	bp.AddPoint(pt)

	return i.Client.Write(bp)
}

//NewInfluxDBWriter - create influx dbClient writer
func NewInfluxDBWriter(config configuration.InfluxDBConfig, tags map[string]string) (DBWriter, error) {
	c, err := dbClient.NewHTTPClient(dbClient.HTTPConfig{
		Addr:     config.Address,
		Username: config.User,
		Password: config.Password,
	})

	if nil != err {
		return nil, err
	}

	return &Influx{
		Client:   c,
		Database: config.Database,
		Tags:     tags,
	}, nil
}
