package auth

import "sync"

// Directory holds account records in memory, keyed by case-sensitive email.
// IDs are assigned monotonically and never reused within a process lifetime.
type Directory struct {
	mu      sync.RWMutex
	nextID  int
	byEmail map[string]Account
	byID    map[int]Account
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		nextID:  1,
		byEmail: make(map[string]Account),
		byID:    make(map[int]Account),
	}
}

// Create inserts a new account, enforcing email uniqueness under the lock.
func (d *Directory) Create(name, email, role string) (Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.byEmail[email]; ok {
		return Account{}, ErrEmailTaken
	}
	acc := Account{ID: d.nextID, Name: name, Email: email, Role: role}
	d.nextID++
	d.byEmail[email] = acc
	d.byID[acc.ID] = acc
	return acc, nil
}

// FindByEmail looks up an account by its email key.
func (d *Directory) FindByEmail(email string) (Account, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	acc, ok := d.byEmail[email]
	return acc, ok
}

// Find looks up an account by id.
func (d *Directory) Find(id int) (Account, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	acc, ok := d.byID[id]
	return acc, ok
}

// List returns all accounts ordered by id.
func (d *Directory) List() []Account {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Account, 0, len(d.byID))
	for id := 1; id < d.nextID; id++ {
		if acc, ok := d.byID[id]; ok {
			out = append(out, acc)
		}
	}
	return out
}

// AccountUpdate carries the mutable directory fields; nil means unchanged.
// Email is the credential key and stays fixed for the life of the account.
type AccountUpdate struct {
	Name *string
	Role *string
}

// Update mutates an existing account and returns the result.
func (d *Directory) Update(id int, upd AccountUpdate) (Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	acc, ok := d.byID[id]
	if !ok {
		return Account{}, ErrUserNotFound
	}
	if upd.Name != nil {
		acc.Name = *upd.Name
	}
	if upd.Role != nil {
		acc.Role = *upd.Role
	}
	d.byID[id] = acc
	d.byEmail[acc.Email] = acc
	return acc, nil
}

// Delete removes an account by id.
func (d *Directory) Delete(id int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	acc, ok := d.byID[id]
	if !ok {
		return ErrUserNotFound
	}
	delete(d.byID, id)
	delete(d.byEmail, acc.Email)
	return nil
}

// Credentials maps account emails to salted password hashes. One entry per
// email; re-registering overwrites, but the directory rejects duplicate
// emails before a credential is ever stored.
type Credentials struct {
	mu     sync.RWMutex
	hashes map[string]string
}

// NewCredentials creates an empty credential store.
func NewCredentials() *Credentials {
	return &Credentials{hashes: make(map[string]string)}
}

// Set stores the password hash for the email.
func (c *Credentials) Set(email, hash string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hashes[email] = hash
}

// Get returns the stored hash for the email.
func (c *Credentials) Get(email string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	hash, ok := c.hashes[email]
	return hash, ok
}

// Delete removes the credential for the email.
func (c *Credentials) Delete(email string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.hashes, email)
}
