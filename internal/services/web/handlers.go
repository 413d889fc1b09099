package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/narrative.dice/internal/core/check"
	"github.com/louisbranch/narrative.dice/internal/core/dice"
	"github.com/louisbranch/narrative.dice/internal/core/poolcode"
	apperrors "github.com/louisbranch/narrative.dice/internal/platform/errors"
	"github.com/louisbranch/narrative.dice/internal/platform/otel"
	"github.com/louisbranch/narrative.dice/internal/platform/requestctx"
	"github.com/louisbranch/narrative.dice/internal/random"
	"github.com/louisbranch/narrative.dice/internal/render"
)

var tracer = otel.Tracer("narrative.dice/web")

type handler struct {
	locale  string
	newSeed func() (int64, error)
	logger  *log.Logger
}

func (h *handler) handleRoll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "web.roll")
	defer span.End()

	locale := requestctx.LocaleFromContext(ctx)
	query := r.URL.Query()

	pool, skipped := poolcode.DecodeStrict(query.Get("pool"))
	if len(skipped) > 0 {
		h.logger.Printf("roll: skipped pool characters %q", string(skipped))
	}
	if pool.IsEmpty() {
		h.renderError(w, r, http.StatusBadRequest, locale, apperrors.New(apperrors.CodePoolEmpty, "pool is empty"))
		return
	}

	requested, err := random.ParseSeed(query.Get("seed"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, locale, err)
		return
	}
	seed, source, err := random.ResolveSeed(requested, h.newSeed)
	if errors.Is(err, random.ErrSeedOutOfRange()) {
		h.renderError(w, r, http.StatusBadRequest, locale, err)
		return
	}
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, locale, err)
		return
	}
	span.SetAttributes(
		attribute.String("dice.pool", poolcode.Encode(pool)),
		attribute.Int64("dice.seed", seed),
		attribute.String("dice.seed_source", source),
	)

	roll := pool.Roll(random.NewSource(seed))
	result := roll.Aggregate()
	renderer := render.NewRenderer(locale)
	outcome := check.Check(result)

	view := rollView{
		Copy:     copyFor(locale),
		Code:     poolcode.Encode(pool),
		PoolText: renderer.Pool(pool),
		Seed:     seed,
		Result:   renderer.Format(result),
		Success:  outcome.Success,
		Margin:   outcome.Margin,
	}
	for _, dieRoll := range roll.Rolls() {
		view.Faces = append(view.Faces, faceView{
			Die:      dieRoll.Die().String(),
			DieLabel: renderer.Die(dieRoll.Die()),
			Index:    dieRoll.Index(),
			Face:     dieRoll.Face().String(),
		})
	}
	templ.Handler(rollPage(view)).ServeHTTP(w, r.WithContext(ctx))
}

func (h *handler) handleFaces(w http.ResponseWriter, r *http.Request) {
	locale := requestctx.LocaleFromContext(r.Context())
	renderer := render.NewRenderer(locale)

	tables := make([]dieTableView, 0, len(dice.Dice()))
	for _, d := range dice.Dice() {
		code, _ := poolcode.Char(d)
		table := dieTableView{Die: d.String(), Label: renderer.Die(d), Code: string(code)}
		for index, face := range d.Faces() {
			table.Faces = append(table.Faces, faceView{Die: d.String(), Index: index, Face: face.String()})
		}
		tables = append(tables, table)
	}
	templ.Handler(facesPage(copyFor(locale), tables)).ServeHTTP(w, r)
}

func (h *handler) renderError(w http.ResponseWriter, r *http.Request, status int, locale string, err error) {
	if apperrors.CodeOf(err) == apperrors.CodeUnknown {
		h.logger.Printf("web %s: %v", r.URL.Path, err)
	}
	message := apperrors.UserMessage(err, locale)
	templ.Handler(errorPage(copyFor(locale), message), templ.WithStatus(status)).ServeHTTP(w, r)
}
