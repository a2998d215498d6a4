// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package keeppattern

import (
	"github.com/stretchr/testify/mock"
)

// mockConverter is a mock implementation of DescriptorConverter for testing.
type mockConverter struct {
	mock.Mock
}

func (m *mockConverter) Descriptor(typeName string) string {
	args := m.Called(typeName)
	return args.String(0)
}
