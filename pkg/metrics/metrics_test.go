package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording pipeline metrics", func() {
			Convey("Then it should record accepted and dropped rows", func() {
				So(func() {
					RecordRowAccepted()
					RecordRowAccepted()
					RecordRowDropped("unknown_team")
					RecordRowDropped("invalid_down")
				}, ShouldNotPanic)
			})

			Convey("And it should record bucket plays", func() {
				So(func() {
					RecordBucketPlay("fourth_short_midfield")
					RecordBucketPlay("neutral_early_down")
				}, ShouldNotPanic)
			})

			Convey("And it should record builds and build errors", func() {
				So(func() {
					RecordBuild(120)
					RecordBuild(95)
					RecordBuildError()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording artifact store metrics", func() {
			Convey("Then it should record saves and loads", func() {
				So(func() {
					RecordArtifactSave(12)
					RecordArtifactLoad(3)
				}, ShouldNotPanic)
			})

			Convey("And it should update the served team count", func() {
				So(func() {
					UpdateArtifactTeams(32)
					UpdateArtifactTeams(0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record requests and durations", func() {
				So(func() {
					RecordHTTPRequest("teams", "GET", "200")
					RecordHTTPRequestDuration("teams", "GET", "200", 4.2)
					RecordErrorByEndpoint("team_tendencies", "GET", "not_found")
				}, ShouldNotPanic)
			})
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the package registry", t, func() {
		Convey("Then it should gather the registered metrics", func() {
			registry := GetRegistry()
			So(registry, ShouldNotBeNil)

			RecordRowAccepted()
			families, err := registry.Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
