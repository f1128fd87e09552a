package dispatch

import (
	"context"
	"sync"

	"github.com/alumicraft/docmailer/dto"
	"github.com/alumicraft/docmailer/internal/enum"
	internal_errors "github.com/alumicraft/docmailer/internal/errors"
	"github.com/alumicraft/docmailer/internal/logger"
	"github.com/alumicraft/docmailer/internal/models"
	"github.com/alumicraft/docmailer/internal/repository"
)

func testLogger() logger.Logger {
	appLogger := logger.NewAppLogger(&logger.Config{
		DevMode: true,
	})
	appLogger.InitLogger()
	return appLogger
}

type fakeConfigRepository struct {
	configs map[string]*models.DocumentTypeConfig
	err     error
}

func (r *fakeConfigRepository) GetByDocumentType(ctx context.Context, documentType string) (*models.DocumentTypeConfig, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.configs[documentType], nil
}

func (r *fakeConfigRepository) List(ctx context.Context) ([]*models.DocumentTypeConfig, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*models.DocumentTypeConfig
	for _, config := range r.configs {
		out = append(out, config)
	}
	return out, nil
}

func (r *fakeConfigRepository) Upsert(ctx context.Context, config *models.DocumentTypeConfig) error {
	if r.configs == nil {
		r.configs = make(map[string]*models.DocumentTypeConfig)
	}
	r.configs[config.DocumentType] = config
	return nil
}

type fakeSendRecordRepository struct {
	mu        sync.Mutex
	records   []*models.SendRecord
	createErr error
	countErr  error
}

func (r *fakeSendRecordRepository) Create(ctx context.Context, record *models.SendRecord) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if record.ID == "" {
		record.ID = "send_test"
	}
	r.records = append(r.records, record)
	return nil
}

func (r *fakeSendRecordRepository) CountByStatus(ctx context.Context, documentType, documentID string, status enum.SendStatus) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, record := range r.records {
		if record.DocumentType == documentType && record.DocumentID == documentID && record.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeSendRecordRepository) ListByDocument(ctx context.Context, documentType, documentID string) ([]*models.SendRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.SendRecord
	for _, record := range r.records {
		if record.DocumentType == documentType && record.DocumentID == documentID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (r *fakeSendRecordRepository) GetByProviderMessageID(ctx context.Context, providerMessageID string) (*models.SendRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, record := range r.records {
		if record.ProviderMessageID == providerMessageID {
			return record, nil
		}
	}
	return nil, nil
}

func (r *fakeSendRecordRepository) UpdateDeliveryStatus(ctx context.Context, id string, status enum.DeliveryStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, record := range r.records {
		if record.ID == id {
			record.DeliveryStatus = status
		}
	}
	return nil
}

type fakeDocumentStore struct {
	statuses map[string]enum.DocumentStatus
	fields   map[string]map[string]string
}

func documentKey(documentType, documentID string) string {
	return documentType + "/" + documentID
}

func (s *fakeDocumentStore) SubmissionStatus(ctx context.Context, documentType, documentID string) (enum.DocumentStatus, error) {
	status, ok := s.statuses[documentKey(documentType, documentID)]
	if !ok {
		return "", internal_errors.ErrDocumentNotFound
	}
	return status, nil
}

func (s *fakeDocumentStore) FieldValue(ctx context.Context, documentType, documentID, field string) (string, error) {
	fields, ok := s.fields[documentKey(documentType, documentID)]
	if !ok {
		return "", internal_errors.ErrDocumentNotFound
	}
	return fields[field], nil
}

type fakePartyStore struct {
	emails map[string]string
}

func (s *fakePartyStore) PrimaryEmail(ctx context.Context, recordType, recordID string) (string, error) {
	return s.emails[recordType+"/"+recordID], nil
}

type fakeDeliverer struct {
	mu       sync.Mutex
	requests []*dto.DeliveryRequest
	result   *dto.DeliveryResult
	err      error
}

func (d *fakeDeliverer) Deliver(ctx context.Context, request *dto.DeliveryRequest) (*dto.DeliveryResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.requests = append(d.requests, request)
	if d.err != nil {
		return nil, d.err
	}
	return d.result, nil
}

func (d *fakeDeliverer) VerifyConnection(ctx context.Context) error {
	return d.err
}

type fakePublisher struct {
	mu     sync.Mutex
	events []*dto.DocumentEmailDispatchedEvent
	err    error
}

func (p *fakePublisher) PublishDispatched(ctx context.Context, event *dto.DocumentEmailDispatchedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *fakePublisher) Close() error {
	return nil
}

type testFixture struct {
	configs   *fakeConfigRepository
	sends     *fakeSendRecordRepository
	documents *fakeDocumentStore
	parties   *fakePartyStore
	deliverer *fakeDeliverer
	publisher *fakePublisher
	service   *dispatchService
}

func newTestFixture() *testFixture {
	f := &testFixture{
		configs:   &fakeConfigRepository{configs: map[string]*models.DocumentTypeConfig{}},
		sends:     &fakeSendRecordRepository{},
		documents: &fakeDocumentStore{statuses: map[string]enum.DocumentStatus{}, fields: map[string]map[string]string{}},
		parties:   &fakePartyStore{emails: map[string]string{}},
		deliverer: &fakeDeliverer{result: &dto.DeliveryResult{Success: true, MessageID: "msg_001"}},
		publisher: &fakePublisher{},
	}

	repos := &repository.Repositories{
		DocumentTypeConfigRepository: f.configs,
		SendRecordRepository:         f.sends,
		DocumentStore:                f.documents,
		RelatedPartyStore:            f.parties,
	}

	f.service = NewDispatchService(testLogger(), repos, f.deliverer, f.publisher).(*dispatchService)
	return f
}

func (f *testFixture) addConfig(config *models.DocumentTypeConfig) {
	f.configs.configs[config.DocumentType] = config
}

func (f *testFixture) addDocument(documentType, documentID string, status enum.DocumentStatus, fields map[string]string) {
	key := documentKey(documentType, documentID)
	f.documents.statuses[key] = status
	if fields == nil {
		fields = map[string]string{}
	}
	f.documents.fields[key] = fields
}
