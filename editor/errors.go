//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import "errors"

// ErrInvalidSymbol is returned when a symbol key or markup fragment is not in
// the catalog. The tree is left unchanged.
var ErrInvalidSymbol = errors.New("invalid symbol")

// ErrUnknownTemplate is returned when a template or operator key is not in
// the catalog. The tree is left unchanged.
var ErrUnknownTemplate = errors.New("unknown template")

// ErrInvalidTemplate is returned when a template registration is malformed.
var ErrInvalidTemplate = errors.New("invalid template")
