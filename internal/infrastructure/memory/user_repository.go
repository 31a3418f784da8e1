package memory

import (
	"sort"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/comptalink-api/internal/domain/entity"
	"github.com/jhoicas/comptalink-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria del puerto UserRepository.
type UserRepo struct {
	mu     sync.RWMutex
	users  map[int64]*entity.User
	nextID int64
	coll   *collate.Collator
}

// NewUserRepository construye el adaptador en memoria para usuarios.
func NewUserRepository() *UserRepo {
	return &UserRepo{
		users:  make(map[int64]*entity.User),
		nextID: 1,
		// Producto para el mercado francés: el listado de clientes se ordena
		// con colación francesa (é, ç, etc. en su posición correcta).
		coll: collate.New(language.French),
	}
}

// Create asigna el siguiente id, estampa CreatedAt y almacena el usuario.
func (r *UserRepo) Create(user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := *user
	u.ID = r.nextID
	r.nextID++
	u.CreatedAt = time.Now()
	r.users[u.ID] = &u
	return cloneUser(&u), nil
}

// GetByID devuelve el usuario o (nil, nil) si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneUser(r.users[id]), nil
}

// GetByUsername devuelve el usuario con ese username o (nil, nil).
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// ListClients devuelve los usuarios con rol client ordenados por FullName ascendente.
func (r *UserRepo) ListClients() ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.User, 0)
	for _, u := range r.users {
		if u.Role == entity.RoleClient {
			result = append(result, cloneUser(u))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return r.coll.CompareString(result[i].FullName, result[j].FullName) < 0
	})
	return result, nil
}

// ListByRole devuelve todos los usuarios con el rol indicado.
func (r *UserRepo) ListByRole(role string) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.User, 0)
	for _, u := range r.users {
		if u.Role == role {
			result = append(result, cloneUser(u))
		}
	}
	return result, nil
}

// cloneUser devuelve una copia del registro: los llamadores nunca reciben el
// puntero guardado en el map, así no pueden mutar el estado fuera del lock.
func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
