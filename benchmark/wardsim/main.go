package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxDevices int = 500
var httpHostPort string = "127.0.0.1:1080"

var sessionToken string

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	sessionToken = registerCaregiver()
	fmt.Printf("caregiver session established\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	deviceIDs := make([]string, maxDevices)
	wg := sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			deviceIDs[i] = registerDevice()
			fmt.Printf("\rregistered device %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rregistered %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(deviceIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices*3)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func registerCaregiver() string {
	payload := map[string]string{
		"email":    fmt.Sprintf("wardsim-%s@example.com", uuid.NewString()),
		"name":     "Ward Simulator",
		"password": "wardsim-password",
	}
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/auth/register", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		panic(fmt.Sprintf("register failed: %v", resp.Status))
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		panic(err)
	}
	return body.Token
}

func registerDevice() string {
	payload := map[string]string{
		"serialNumber": "WARDSIM_" + uuid.NewString(),
		"location":     "Ward A",
	}
	jsonData, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("http://%s/devices", httpHostPort), bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+sessionToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		panic(fmt.Sprintf("device registration failed: %v", resp.Status))
	}

	var body struct {
		Device struct {
			ID string `json:"id"`
		} `json:"device"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		panic(err)
	}
	return body.Device.ID
}

func doAction(deviceID string) {
	actions := []func(){
		genPostReadingAction(deviceID),
		genPostAlertAction(deviceID),
		genGetReadingsAction(deviceID),
	}
	actionNames := []string{
		"PostReading",
		"PostAlert",
		"GetReadings",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for device %v", actionNames[index], deviceID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genPostReadingAction(deviceID string) func() {
	return func() {
		// mostly comfortable room values; one in ten readings spikes out of
		// range to exercise the alerting path
		temperature := rndFloat64(20.0, 28.0, 2)
		if rnd.Int31n(10) == 0 {
			temperature = rndFloat64(31.0, 40.0, 2)
		}

		payload := map[string]any{
			"deviceId":    deviceID,
			"temperature": temperature,
			"humidity":    rndFloat64(40.0, 60.0, 2),
			"motion":      flipCoin(),
			"fanActive":   temperature > 26.0,
		}
		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/sensors/readings", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genPostAlertAction(deviceID string) func() {
	return func() {
		alertType := "WATER"
		if flipCoin() {
			alertType = "HELP"
		}

		payload := map[string]string{
			"deviceId": deviceID,
			"type":     alertType,
			"message":  fmt.Sprintf("%s button pressed", alertType),
		}
		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/sensors/alerts", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genGetReadingsAction(deviceID string) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/sensors/readings?deviceId=%s&limit=10", httpHostPort, deviceID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}
