package actors

import (
	"reflect"

	"Highlander/internal/shared/actor/messages"
	"Highlander/modules/kit/errx"

	"github.com/asynkron/protoactor-go/actor"
)

type Dispatcher struct {
	handlers map[reflect.Type]Handler
}

type Handler struct {
	fn      reflect.Value
	reqType reflect.Type
}

func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[reflect.Type]Handler),
	}
	d.registerAll()
	return d
}

func (d *Dispatcher) registerAll() {
	register(d, AH.HandleHAArenaState)
	register(d, AH.HandleHANextRound)
	register(d, AH.HandleHARestart)
}

func register[Req messages.ArenaMessage](
	d *Dispatcher,
	fn func(ctx actor.Context, p *ArenaActor, req Req),
) {
	reqType := reflect.TypeOf((*Req)(nil)).Elem()
	if reqType == nil {
		panic("dispatcher req type cannot be nil")
	}

	d.handlers[reqType] = Handler{
		fn:      reflect.ValueOf(fn),
		reqType: reqType,
	}
}

func (d *Dispatcher) Dispatch(ctx actor.Context, p *ArenaActor, req messages.ArenaMessage) {
	if req == nil {
		ctx.Respond(fail(errx.ErrInvalidParam))
		return
	}

	handler, ok := d.handlers[reflect.TypeOf(req)]
	if !ok {
		ctx.Respond(fail(errx.ErrInvalidParam.WithData("message", reflect.TypeOf(req).String())))
		return
	}

	handler.fn.Call([]reflect.Value{
		reflect.ValueOf(ctx),
		reflect.ValueOf(p),
		reflect.ValueOf(req),
	})
}
