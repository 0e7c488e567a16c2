package handlers_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/storefront-dev/storefront/internal/models"
	"github.com/storefront-dev/storefront/internal/store"
)

type pair struct {
	orderID   uint
	productID uint
}

// memStore is an in-memory gateway with the same error contract as
// store.Store.
type memStore struct {
	mu sync.Mutex

	nextUserID    uint
	nextProductID uint
	nextOrderID   uint

	users    map[uint]models.User
	products map[uint]models.Product
	orders   map[uint]models.Order
	links    map[pair]bool

	// err, when set, is returned by every call.
	err error
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[uint]models.User),
		products: make(map[uint]models.Product),
		orders:   make(map[uint]models.Order),
		links:    make(map[pair]bool),
	}
}

func (m *memStore) Ping(ctx context.Context) error {
	return m.err
}

func (m *memStore) emailTaken(email *string, exceptID uint) bool {
	if email == nil {
		return false
	}

	for id, user := range m.users {
		if id != exceptID && user.Email != nil && *user.Email == *email {
			return true
		}
	}

	return false
}

func (m *memStore) CreateUsers(ctx context.Context, users []models.User) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	seen := make(map[string]bool)

	for i := range users {
		if err := users[i].CheckColumns(); err != nil {
			return nil, err
		}

		if email := users[i].Email; email != nil {
			if seen[*email] || m.emailTaken(email, 0) {
				return nil, &store.ConstraintViolation{Field: "email", Message: "Email already exists."}
			}
			seen[*email] = true
		}
	}

	created := make([]models.User, 0, len(users))

	for _, user := range users {
		m.nextUserID++
		user.ID = m.nextUserID
		m.users[user.ID] = user
		created = append(created, user)
	}

	return created, nil
}

func (m *memStore) ListUsers(ctx context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	users := make([]models.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users, nil
}

func (m *memStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	return &user, nil
}

func (m *memStore) UserExists(ctx context.Context, id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return false, m.err
	}

	_, ok := m.users[id]
	return ok, nil
}

func (m *memStore) UpdateUser(ctx context.Context, id uint, user models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	if _, ok := m.users[id]; !ok {
		return nil, store.ErrNotFound
	}

	if err := user.CheckColumns(); err != nil {
		return nil, err
	}

	if m.emailTaken(user.Email, id) {
		return nil, &store.ConstraintViolation{Field: "email", Message: "Email already exists."}
	}

	user.ID = id
	m.users[id] = user

	return &user, nil
}

func (m *memStore) DeleteUser(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	if _, ok := m.users[id]; !ok {
		return store.ErrNotFound
	}

	for orderID, order := range m.orders {
		if order.UserID == id {
			m.deleteOrderLocked(orderID)
		}
	}

	delete(m.users, id)

	return nil
}

func (m *memStore) CreateProducts(ctx context.Context, products []models.Product) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	for i := range products {
		if err := products[i].CheckColumns(); err != nil {
			return nil, err
		}
	}

	created := make([]models.Product, 0, len(products))

	for _, product := range products {
		m.nextProductID++
		product.ID = m.nextProductID
		m.products[product.ID] = product
		created = append(created, product)
	}

	return created, nil
}

func (m *memStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	products := make([]models.Product, 0, len(m.products))
	for _, product := range m.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })

	return products, nil
}

func (m *memStore) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	product, ok := m.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	return &product, nil
}

func (m *memStore) UpdateProduct(ctx context.Context, id uint, product models.Product) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	if _, ok := m.products[id]; !ok {
		return nil, store.ErrNotFound
	}

	if err := product.CheckColumns(); err != nil {
		return nil, err
	}

	product.ID = id
	m.products[id] = product

	return &product, nil
}

func (m *memStore) DeleteProduct(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	if _, ok := m.products[id]; !ok {
		return store.ErrNotFound
	}

	for link := range m.links {
		if link.productID == id {
			delete(m.links, link)
		}
	}

	delete(m.products, id)

	return nil
}

func (m *memStore) CreateOrder(ctx context.Context, userID uint) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	if _, ok := m.users[userID]; !ok {
		return nil, store.ErrNotFound
	}

	m.nextOrderID++
	order := models.Order{
		ID:        m.nextOrderID,
		UserID:    userID,
		OrderDate: time.Now().UTC().Truncate(time.Millisecond),
	}
	m.orders[order.ID] = order

	return &order, nil
}

func (m *memStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	return m.ordersLocked(func(models.Order) bool { return true }), nil
}

func (m *memStore) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	order, ok := m.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	order.Products = m.productsLocked(id)

	return &order, nil
}

func (m *memStore) DeleteOrder(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	if _, ok := m.orders[id]; !ok {
		return store.ErrNotFound
	}

	m.deleteOrderLocked(id)

	return nil
}

func (m *memStore) ListOrdersForUser(ctx context.Context, userID uint) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	if _, ok := m.users[userID]; !ok {
		return nil, store.ErrNotFound
	}

	return m.ordersLocked(func(o models.Order) bool { return o.UserID == userID }), nil
}

func (m *memStore) ListProductsForOrder(ctx context.Context, orderID uint) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	if _, ok := m.orders[orderID]; !ok {
		return nil, store.ErrNotFound
	}

	return m.productsLocked(orderID), nil
}

func (m *memStore) AddProductToOrder(ctx context.Context, orderID, productID uint) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	order, ok := m.orders[orderID]
	if !ok {
		return nil, store.ErrNotFound
	}

	if _, ok := m.products[productID]; !ok {
		return nil, store.ErrNotFound
	}

	link := pair{orderID: orderID, productID: productID}
	if m.links[link] {
		return nil, store.ErrAlreadyAssociated
	}
	m.links[link] = true

	order.Products = m.productsLocked(orderID)

	return &order, nil
}

func (m *memStore) RemoveProductFromOrder(ctx context.Context, orderID, productID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	if _, ok := m.orders[orderID]; !ok {
		return store.ErrNotFound
	}

	if _, ok := m.products[productID]; !ok {
		return store.ErrNotFound
	}

	link := pair{orderID: orderID, productID: productID}
	if !m.links[link] {
		return store.ErrNotAssociated
	}
	delete(m.links, link)

	return nil
}

func (m *memStore) deleteOrderLocked(id uint) {
	for link := range m.links {
		if link.orderID == id {
			delete(m.links, link)
		}
	}
	delete(m.orders, id)
}

func (m *memStore) ordersLocked(keep func(models.Order) bool) []models.Order {
	orders := make([]models.Order, 0, len(m.orders))
	for _, order := range m.orders {
		if keep(order) {
			orders = append(orders, order)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })

	return orders
}

func (m *memStore) productsLocked(orderID uint) []models.Product {
	products := make([]models.Product, 0)
	for link := range m.links {
		if link.orderID == orderID {
			products = append(products, m.products[link.productID])
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })

	return products
}
