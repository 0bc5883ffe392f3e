/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

// Clients holds one client per resource family.  Each family has its own
// Client built from the same template.
type Clients struct {
	Pets  *PetClient
	Store *StoreClient
	Users *UserClient
	Tags  *TagClient
}

func NewClients(template RequestTemplate, opts ...ClientOption) *Clients {
	return &Clients{
		Pets:  NewPetClient(NewClient(template, opts...)),
		Store: NewStoreClient(NewClient(template, opts...)),
		Users: NewUserClient(NewClient(template, opts...)),
		Tags:  NewTagClient(NewClient(template, opts...)),
	}
}

// NewClientsFromConfig applies the timeout and logging settings of config.
// Later options win.
func NewClientsFromConfig(config *TestConfig, opts ...ClientOption) (*Clients, error) {
	template, err := NewRequestTemplateFromConfig(config)
	if err != nil {
		return nil, err
	}

	base := []ClientOption{
		WithTimeout(config.RequestTimeout),
		WithLogger(NewRequestLoggerFromConfig(config)),
	}

	return NewClients(template, append(base, opts...)...), nil
}
