package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"kyc-service/internal/models"
	"kyc-service/internal/repository"

	amqp "github.com/rabbitmq/amqp091-go"
)

// VerificationResultHandler applies a verification result to the stored record
type VerificationResultHandler interface {
	HandleVerificationResult(ctx context.Context, result VerificationResult) error
}

// VerificationConsumer consumes verification results from RabbitMQ. It is the
// write-back path for the external verification worker: no HTTP endpoint
// performs the pending -> verified/rejected transition.
type VerificationConsumer struct {
	conn    *RabbitMQConnection
	handler VerificationResultHandler
}

// NewVerificationConsumer creates a new verification result consumer
func NewVerificationConsumer(conn *RabbitMQConnection, handler VerificationResultHandler) *VerificationConsumer {
	return &VerificationConsumer{
		conn:    conn,
		handler: handler,
	}
}

// Start begins consuming verification results
func (c *VerificationConsumer) Start(ctx context.Context) error {
	_, err := c.conn.Channel.QueueDeclare(
		VerificationResultsQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	msgs, err := c.conn.Channel.Consume(
		VerificationResultsQueue,
		"",    // consumer tag (auto-generated)
		false, // auto-ack (we'll manually ack after processing)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	slog.Info("Verification consumer started", "queue", VerificationResultsQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				slog.Info("Verification consumer stopped")
				return
			case msg, ok := <-msgs:
				if !ok {
					slog.Warn("Verification consumer channel closed")
					return
				}
				c.processMessage(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *VerificationConsumer) processMessage(ctx context.Context, msg amqp.Delivery) {
	var result VerificationResult
	if err := json.Unmarshal(msg.Body, &result); err != nil {
		slog.Error("failed to unmarshal verification result", "error", err)
		// Reject the message and don't requeue (malformed message)
		msg.Nack(false, false)
		return
	}

	slog.Info("Received verification result",
		"record_type", result.RecordType,
		"record_id", result.RecordID,
		"status", result.Status,
	)

	if err := c.handler.HandleVerificationResult(ctx, result); err != nil {
		slog.Error("failed to handle verification result",
			"record_id", result.RecordID,
			"error", err,
		)
		// Results for deleted records or with bogus fields will never
		// succeed; only transient failures are requeued.
		requeue := !isPermanentFailure(err)
		msg.Nack(false, requeue)
		return
	}

	msg.Ack(false)
}

func isPermanentFailure(err error) bool {
	return errors.Is(err, repository.ErrDocumentNotFound) ||
		errors.Is(err, repository.ErrFaceNotFound) ||
		errors.Is(err, errInvalidResult)
}

var errInvalidResult = errors.New("invalid verification result")

// DefaultVerificationResultHandler writes results through the repositories
type DefaultVerificationResultHandler struct {
	documentRepo repository.IDocumentRepository
	faceRepo     repository.IFaceRepository
}

func NewDefaultVerificationResultHandler(documentRepo repository.IDocumentRepository, faceRepo repository.IFaceRepository) *DefaultVerificationResultHandler {
	return &DefaultVerificationResultHandler{
		documentRepo: documentRepo,
		faceRepo:     faceRepo,
	}
}

func (h *DefaultVerificationResultHandler) HandleVerificationResult(ctx context.Context, result VerificationResult) error {
	if !models.IsValidStatus(result.Status) {
		return fmt.Errorf("%w: unknown status %q for record %d", errInvalidResult, result.Status, result.RecordID)
	}

	switch result.RecordType {
	case "document":
		return h.documentRepo.UpdateDocumentStatus(result.RecordID, result.Status)
	case "face":
		return h.faceRepo.UpdateFaceVerification(result.RecordID, result.Status, result.LivenessScore, result.MatchScore)
	default:
		return fmt.Errorf("%w: unknown record type %q", errInvalidResult, result.RecordType)
	}
}
