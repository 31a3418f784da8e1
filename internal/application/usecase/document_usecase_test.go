package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comptalink-api/internal/application/dto"
	"github.com/jhoicas/comptalink-api/internal/application/usecase"
	"github.com/jhoicas/comptalink-api/internal/domain"
	"github.com/jhoicas/comptalink-api/internal/domain/entity"
)

func (f *fixture) documentUC() *usecase.DocumentUseCase {
	return usecase.NewDocumentUseCase(f.documents, f.users, f.notifs, usecase.NewAllAccountantsResolver(f.users))
}

func documentRequest() dto.CreateDocumentRequest {
	return dto.CreateDocumentRequest{Type: "bank_statement", Title: "Relevé mars 2025"}
}

func TestDocument_DepositoNotificaContadores(t *testing.T) {
	f := newFixture(t)
	uc := f.documentUC()

	doc, err := uc.Create(f.client, documentRequest(), "/uploads/rel.pdf", "releve-mars.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pending", doc.Status)
	assert.Equal(t, "/uploads/rel.pdf", doc.FileURL)

	accNotifs, err := f.notifs.ListByUser(f.accountant.ID)
	require.NoError(t, err)
	require.Len(t, accNotifs, 1)
	assert.Contains(t, accNotifs[0].Message, "Relevé mars 2025")
}

// El adjunto es obligatorio para documentos.
func TestDocument_SinArchivoEsInvalido(t *testing.T) {
	f := newFixture(t)
	uc := f.documentUC()

	_, err := uc.Create(f.client, documentRequest(), "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocument_RevisionTraiteYRejete(t *testing.T) {
	f := newFixture(t)
	uc := f.documentUC()

	doc, err := uc.Create(f.client, documentRequest(), "/uploads/rel.pdf", "releve.pdf")
	require.NoError(t, err)

	reviewed, err := uc.Review(f.accountant, doc.ID, "processed")
	require.NoError(t, err)
	assert.Equal(t, "processed", reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, f.accountant.ID, *reviewed.ReviewedBy)

	cliNotifs, err := f.notifs.ListByUser(f.client.ID)
	require.NoError(t, err)
	require.Len(t, cliNotifs, 1)
	assert.Equal(t, "Votre document a été traité.", cliNotifs[0].Message)

	_, err = uc.Review(f.accountant, doc.ID, "rejected")
	require.NoError(t, err)
	cliNotifs, err = f.notifs.ListByUser(f.client.ID)
	require.NoError(t, err)
	require.Len(t, cliNotifs, 2)
	assert.Equal(t, "Votre document a été rejeté.", cliNotifs[0].Message, "el aviso más reciente primero")
}

func TestDocument_ClienteNoPuedeRevisarNiVerCola(t *testing.T) {
	f := newFixture(t)
	uc := f.documentUC()

	doc, err := uc.Create(f.client, documentRequest(), "/uploads/rel.pdf", "releve.pdf")
	require.NoError(t, err)

	_, err = uc.Review(f.client, doc.ID, "processed")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.ListUnprocessed(f.client)
	assert.ErrorIs(t, err, domain.ErrForbidden, "la cola de pendientes es del contador")
}

func TestDocument_ColaPendientesExcluyeRevisados(t *testing.T) {
	f := newFixture(t)
	uc := f.documentUC()

	d1, err := uc.Create(f.client, documentRequest(), "/uploads/a.pdf", "a.pdf")
	require.NoError(t, err)
	d2, err := uc.Create(f.client, dto.CreateDocumentRequest{Type: "receipt", Title: "Reçu"}, "/uploads/b.pdf", "b.pdf")
	require.NoError(t, err)

	_, err = uc.Review(f.accountant, d1.ID, "processed")
	require.NoError(t, err)

	pending, err := uc.ListUnprocessed(f.accountant)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, d2.ID, pending[0].ID)
}

func TestDocument_RevisionIdInexistente(t *testing.T) {
	f := newFixture(t)
	uc := f.documentUC()

	_, err := uc.Review(f.accountant, 404, "rejected")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La política de destinatarios es inyectable: con dos contadores, ambos
// reciben el aviso del depósito.
func TestDocument_ResolverNotificaATodosLosContadores(t *testing.T) {
	f := newFixture(t)
	second, err := f.users.Create(&entity.User{Username: "compta2", PasswordHash: "x", FullName: "Paul Durand", Role: entity.RoleAccountant})
	require.NoError(t, err)
	uc := f.documentUC()

	_, err = uc.Create(f.client, documentRequest(), "/uploads/rel.pdf", "releve.pdf")
	require.NoError(t, err)

	first, err := f.notifs.ListByUser(f.accountant.ID)
	require.NoError(t, err)
	assert.Len(t, first, 1)
	others, err := f.notifs.ListByUser(second.ID)
	require.NoError(t, err)
	assert.Len(t, others, 1)
}
