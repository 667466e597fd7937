package logger

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type OTELLogger struct {
	logger   otellog.Logger
	provider *sdklog.LoggerProvider
}

func initializeOtelLogger(collectorEndpoint, serviceName string) (Logger, error) {
	ctx := context.Background()

	conn, err := grpc.NewClient(
		collectorEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection: %w", err)
	}

	exporter, err := otlploggrpc.New(ctx, otlploggrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create log exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	provider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)
	global.SetLoggerProvider(provider)

	return newOTELLogger(provider, serviceName), nil
}

func newOTELLogger(provider *sdklog.LoggerProvider, serviceName string) *OTELLogger {
	return &OTELLogger{
		logger:   provider.Logger(serviceName),
		provider: provider,
	}
}

func severity(level LogLevel) otellog.Severity {
	switch level {
	case LogLevelDebug:
		return otellog.SeverityDebug
	case LogLevelInfo:
		return otellog.SeverityInfo
	case LogLevelWarn:
		return otellog.SeverityWarn
	case LogLevelError:
		return otellog.SeverityError
	case LogLevelFatal:
		return otellog.SeverityFatal
	}
	return otellog.SeverityUndefined
}

func keyValue(key string, value any) otellog.KeyValue {
	switch v := value.(type) {
	case string:
		return otellog.String(key, v)
	case fmt.Stringer:
		return otellog.String(key, v.String())
	case int:
		return otellog.Int(key, v)
	case int64:
		return otellog.Int64(key, v)
	case float64:
		return otellog.Float64(key, v)
	case bool:
		return otellog.Bool(key, v)
	}
	return otellog.String(key, fmt.Sprintf("%v", value))
}

func (l *OTELLogger) Log(ctx context.Context, entry LogEntry) {
	var record otellog.Record
	record.SetTimestamp(entry.Timestamp)
	record.SetBody(otellog.StringValue(entry.Message))
	record.SetSeverityText(string(entry.Level))
	record.SetSeverity(severity(entry.Level))

	attrs := make([]otellog.KeyValue, 0, len(entry.Attributes)+1)
	for key, value := range entry.Attributes {
		attrs = append(attrs, keyValue(key, value))
	}
	if entry.Error != nil {
		attrs = append(attrs, otellog.String("error", entry.Error.Error()))
	}

	record.AddAttributes(attrs...)
	l.logger.Emit(ctx, record)
}

func (l *OTELLogger) Shutdown(ctx context.Context) error {
	return l.provider.Shutdown(ctx)
}
