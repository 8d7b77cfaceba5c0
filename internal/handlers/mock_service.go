package handlers

import (
	"context"

	"smart_climate"
	"smart_climate/internal/service"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockClimate struct {
	evalResp smart_climate.ClimateState
	evalErr  error
	occResp  smart_climate.ClimateState
	occErr   error

	evalCalls     int
	occCalls      int
	lastReading   smart_climate.EnvironmentalReading
	lastOccupancy smart_climate.Occupancy
}

func (m *mockClimate) Evaluate(ctx context.Context, reading smart_climate.EnvironmentalReading, occupancy smart_climate.Occupancy) (smart_climate.ClimateState, error) {
	m.evalCalls++
	m.lastReading = reading
	m.lastOccupancy = occupancy
	return m.evalResp, m.evalErr
}
func (m *mockClimate) SetOccupancy(ctx context.Context, occupancy smart_climate.Occupancy) (smart_climate.ClimateState, error) {
	m.occCalls++
	m.lastOccupancy = occupancy
	return m.occResp, m.occErr
}

type mockPreferences struct {
	getResp       smart_climate.UserPreferences
	getErr        error
	updateErr     error
	recommendResp smart_climate.UserPreferences
	recommendErr  error
	applyResp     smart_climate.UserPreferences
	applyErr      error

	updateCalls int
	applyCalls  int
	lastUpdate  smart_climate.UserPreferences
}

func (m *mockPreferences) Get(ctx context.Context) (smart_climate.UserPreferences, error) {
	return m.getResp, m.getErr
}
func (m *mockPreferences) Update(ctx context.Context, p smart_climate.UserPreferences) error {
	m.updateCalls++
	m.lastUpdate = p
	return m.updateErr
}
func (m *mockPreferences) Recommend(ctx context.Context) (smart_climate.UserPreferences, error) {
	return m.recommendResp, m.recommendErr
}
func (m *mockPreferences) ApplyRecommended(ctx context.Context) (smart_climate.UserPreferences, error) {
	m.applyCalls++
	return m.applyResp, m.applyErr
}

type mockMonitoring struct {
	state smart_climate.ClimateState
	err   error
}

func (m *mockMonitoring) GetState(ctx context.Context) (smart_climate.ClimateState, error) {
	return m.state, m.err
}

type mockEventLog struct {
	resp       []smart_climate.ClimateEvent
	err        error
	lastFilter service.LogFilter
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]smart_climate.ClimateEvent, error) {
	m.lastFilter = f
	return m.resp, m.err
}
